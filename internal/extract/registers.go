package extract

import (
	"fmt"
	"strings"

	"pinctrl-generator/internal/model"
	"pinctrl-generator/internal/rename"
	"pinctrl-generator/internal/svd"
)

// gpioPeripheral is the SVD peripheral describing non-secure GPIO routing.
// Only its registers are consulted.
const gpioPeripheral = "GPIO_NS"

// Registers folds one register-description document into the model: route
// bases, enable bits and route register offsets for every routable signal of
// the GPIO routing block. All offsets are stored in 32-bit words.
//
// Peripheral bases and signal attributes follow first-writer-wins semantics,
// so re-processing a layout already seen on an earlier variant of the family
// is a no-op. A device without the GPIO routing peripheral, or with a route
// register whose name cannot be split into peripheral and signal, is a
// malformed document and aborts the run.
func Registers(m *model.Model, dev *svd.Device, tables rename.Tables) error {
	gpio, ok := dev.Peripheral(gpioPeripheral)
	if !ok {
		return fmt.Errorf("device %s: peripheral %s not found", dev.Name, gpioPeripheral)
	}

	for _, reg := range gpio.Registers {
		switch ClassifyRegister(reg.Name) {
		case RegRouteEnable:
			raw := strings.TrimSuffix(reg.Name, routeEnableSuffix)
			p := m.Ensure(tables.Peripheral(raw), wordOffset(reg.AddressOffset))

			for _, field := range reg.Fields {
				if !strings.HasSuffix(field.Name, enableFieldSuffix) {
					continue
				}

				rawSignal := strings.TrimSuffix(field.Name, enableFieldSuffix)
				p.Ensure(tables.Signal(rawSignal)).SetEnableBit(uint(field.BitOffset))
			}

		case RegRoute:
			rawPeripheral, rest, found := strings.Cut(reg.Name, "_")
			if !found {
				return fmt.Errorf("device %s: route register %s has no peripheral/signal separator",
					dev.Name, reg.Name)
			}

			signal := tables.Signal(strings.TrimSuffix(rest, routeSuffix))

			// If the peripheral was never seen via a _ROUTEEN register, its
			// base defaults to this route register's own offset.
			p := m.Ensure(tables.Peripheral(rawPeripheral), wordOffset(reg.AddressOffset))

			// Route registers sit above the peripheral base in every known
			// layout; a register below it would wrap the unsigned relative
			// offset, so fail loudly instead.
			offset := int(wordOffset(reg.AddressOffset)) - int(p.Base)
			if offset < 0 {
				return fmt.Errorf("device %s: route register %s at word offset %d precedes peripheral %s base %d",
					dev.Name, reg.Name, wordOffset(reg.AddressOffset), p.Name, p.Base)
			}

			p.Ensure(signal).SetRouteOffset(uint(offset))
		}
	}

	return nil
}

// wordOffset converts a byte offset to a 32-bit word offset.
func wordOffset(byteOffset svd.Uint) uint {
	return uint(byteOffset) / 4
}
