// Package extract builds the routing model from the two upstream document
// kinds: register-description (SVD) documents contribute register layout,
// routing-capability (Pin Tool) documents contribute valid pin locations.
package extract

import "strings"

//go:generate go tool stringer -type=RegisterClass -output=registerclass_string.go

// RegisterClass classifies a GPIO routing register by its name. The upstream
// register maps encode the register's role in a name suffix; keeping the
// matching rule in one function makes the policy testable.
type RegisterClass int

const (
	// RegUnrelated is any register that plays no part in signal routing.
	RegUnrelated RegisterClass = iota

	// RegRouteEnable is a <PERIPHERAL>_ROUTEEN register whose <SIGNAL>PEN
	// bit-fields individually enable routing of each signal.
	RegRouteEnable

	// RegRoute is a <PERIPHERAL>_<SIGNAL>ROUTE register encoding the chosen
	// physical location of one signal.
	RegRoute
)

const (
	routeEnableSuffix = "_ROUTEEN"
	routeSuffix       = "ROUTE"
	enableFieldSuffix = "PEN"
)

// ClassifyRegister classifies a register name. The _ROUTEEN check comes
// first; its suffix does not itself end in ROUTE, so the classes are
// mutually exclusive.
func ClassifyRegister(name string) RegisterClass {
	switch {
	case strings.HasSuffix(name, routeEnableSuffix):
		return RegRouteEnable
	case strings.HasSuffix(name, routeSuffix):
		return RegRoute
	default:
		return RegUnrelated
	}
}
