// Package gen renders the aggregated routing model into a pin-control header
// of preprocessor definitions: one parameterized routing macro per signal and
// one concrete macro per (signal, port, pin) location.
package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"pinctrl-generator/internal/diagnostic"
	"pinctrl-generator/internal/model"
)

const headerTemplate = `/*
 * Pin Control for Silicon Labs {{.Family}} devices
 * Copyright (c) 2024 Silicon Laboratories Inc.
 *
 * SPDX-License-Identifier: Apache-2.0
 */

#include <dt-bindings/pinctrl/silabs-pinctrl-dbus.h>
{{range .Peripherals}}
{{range .Macros}}#define SILABS_DBUS_{{.Peripheral}}_{{.Signal}}(port, pin) SILABS_DBUS(port, pin, {{.Base}}, {{if .HasEnable}}1{{else}}0{{end}}, {{.EnableBit}}, {{.Route}})
{{end}}{{end}}{{range .Peripherals}}
{{range .Pins}}#define {{.Peripheral}}_{{.Signal}}_P{{.PortLetter}}{{.Pin}} SILABS_DBUS_{{.Peripheral}}_{{.Signal}}({{.Port}}, {{.Pin}})
{{end}}{{end}}`

var tmpl = template.Must(template.New("pinctrl-header").Parse(headerTemplate))

type headerData struct {
	Family      string
	Peripherals []peripheralGroup
}

type peripheralGroup struct {
	Macros []signalMacro
	Pins   []pinMacro
}

// signalMacro is the parameterized routing macro for one signal: base offset,
// enable-bit presence flag, enable-bit position and route register offset,
// all in 32-bit words.
type signalMacro struct {
	Peripheral string
	Signal     string
	Base       uint
	HasEnable  bool
	EnableBit  uint
	Route      uint
}

// pinMacro is one concrete (signal, port, pin) definition invoking the
// signal's parameterized macro with a fixed location.
type pinMacro struct {
	Peripheral string
	Signal     string
	PortLetter string
	Port       int
	Pin        int
}

// Render produces the pin-control header for one family. Iteration follows
// the model's insertion order for peripherals and signals, ports ascending
// and pins ascending within a port, so output is byte-identical across runs
// over the same documents.
//
// A signal that never got a route register is incomplete: it produces no
// macros and one warning, regardless of how many variants were processed.
func Render(family string, m *model.Model, diags *diagnostic.Diagnostics) ([]byte, error) {
	data := headerData{Family: family}

	for _, p := range m.Peripherals() {
		var group peripheralGroup

		for _, s := range p.Signals() {
			if !s.Routable() {
				diags.AddWarning(diagnostic.CodeMissingRouteRegister,
					fmt.Sprintf("no route register for %s_%s", p.Name, s.Name),
					p.Name, s.Name, "")

				continue
			}

			macro := signalMacro{
				Peripheral: p.Name,
				Signal:     s.Name,
				Base:       p.Base,
				Route:      *s.RouteOffset,
			}
			if s.EnableBit != nil {
				macro.HasEnable = true
				macro.EnableBit = *s.EnableBit
			}

			group.Macros = append(group.Macros, macro)

			for _, port := range s.Ports() {
				for _, pin := range s.Pins(port) {
					group.Pins = append(group.Pins, pinMacro{
						Peripheral: p.Name,
						Signal:     s.Name,
						PortLetter: portLetter(port),
						Port:       port,
						Pin:        pin,
					})
				}
			}
		}

		data.Peripherals = append(data.Peripherals, group)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering pinctrl header: %w", err)
	}

	return buf.Bytes(), nil
}

// portLetter renders a GPIO port bank index as a letter (0→A, 1→B, …) for
// use in symbol names. The underlying data stays integral.
func portLetter(port int) string {
	return string(rune('A' + port))
}
