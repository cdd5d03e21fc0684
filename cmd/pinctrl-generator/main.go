// Package main provides the CLI entrypoint for pinctrl-generator.
//
// pinctrl-generator derives, for a family of Silicon Labs Series 2 devices,
// the mapping from peripheral signals to the physical pins they can be routed
// to, and renders it as a devicetree pin-control header:
//   - Register-description (SVD) documents contribute route register layout
//   - Pin Tool routing documents contribute valid (port, pin) locations
//   - The aggregated family model is serialized to <family>-pinctrl.h
package main

import "pinctrl-generator/cmd/pinctrl-generator/cmd"

func main() {
	cmd.Execute()
}
