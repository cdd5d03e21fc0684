package extract

import (
	"fmt"

	"pinctrl-generator/internal/diagnostic"
	"pinctrl-generator/internal/model"
	"pinctrl-generator/internal/portio"
	"pinctrl-generator/internal/rename"
)

// prsPeripheral needs a two-part module lookup key in the routing documents:
// its selectors live under per-signal modules named PRS.<signal> with a bare
// PRS selector prefix.
const prsPeripheral = "PRS0"

// Routing enriches every signal already present in the model with the pin
// locations listed by one routing-capability document. It never creates new
// peripherals or signals; entries the register model does not know about are
// invisible to this step.
//
// A (peripheral, signal) pair with no matching selector in this document gets
// a warning and keeps whatever pinout other variants supplied. doc identifies
// the document in those warnings.
func Routing(m *model.Model, d *portio.Document, doc string, tables rename.Tables, diags *diagnostic.Diagnostics) {
	for _, p := range m.Peripherals() {
		for _, s := range p.Signals() {
			ptSignal := tables.RoutingSignal(s.Name)

			module, prefix := p.Name, p.Name
			if p.Name == prsPeripheral {
				module = "PRS." + s.Name
				prefix = "PRS"
			}

			sel, ok := d.FindSelector(module, prefix+"_"+ptSignal)
			if !ok {
				diags.AddWarning(diagnostic.CodeNoRoutingMatch,
					fmt.Sprintf("no routing-capability match for %s_%s", p.Name, s.Name),
					p.Name, s.Name, doc)

				continue
			}

			route, ok := sel.Route(ptSignal)
			if !ok {
				continue
			}

			for _, loc := range route.Locations {
				s.AddLocation(loc.PortBank, loc.Pin)
			}
		}
	}
}
