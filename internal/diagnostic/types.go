package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostic codes emitted during model building and serialization.
const (
	// CodeNoRoutingMatch marks a register-model signal for which a variant's
	// routing-capability document has no matching module/selector.
	CodeNoRoutingMatch = "no-routing-match"

	// CodeMissingRouteRegister marks a signal that never got a route register
	// across all processed documents and is skipped at serialization.
	CodeMissingRouteRegister = "missing-route-register"
)

// Diagnostics accumulates the warnings of one aggregation run. Hard failures
// (malformed or absent documents) are not diagnostics; they propagate as
// errors and abort the run.
type Diagnostics struct {
	Warnings []Diagnostic
}

// Diagnostic represents a single warning.
type Diagnostic struct {
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Peripheral is the canonical peripheral name this relates to (if any).
	Peripheral string
	// Signal is the canonical signal name this relates to (if any).
	Signal string
	// Variant identifies the chip variant or document this relates to (if any).
	Variant string
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, peripheral, signal, variant string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Code:       code,
		Message:    message,
		Peripheral: peripheral,
		Signal:     signal,
		Variant:    variant,
	})
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Peripheral != "" {
		name := d.Peripheral
		if d.Signal != "" {
			name += "_" + d.Signal
		}

		prefix = append(prefix, "["+name+"]")
	}

	if d.Variant != "" {
		prefix = append(prefix, d.Variant)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
