// Package model holds the aggregated peripheral→signal routing model for one
// device family.
//
// The model is built fresh per run, grown monotonically as variant documents
// are folded in, and consumed once by the serializer. It has a single logical
// owner at a time (the aggregation engine), so no synchronization is needed.
package model

import "sort"

// Model is the cumulative routing model for a whole family. Peripherals are
// kept in insertion order so that serialization is deterministic given a
// deterministic variant processing order.
type Model struct {
	order       []string
	peripherals map[string]*Peripheral
}

// New creates an empty model.
func New() *Model {
	return &Model{peripherals: make(map[string]*Peripheral)}
}

// Peripheral returns the peripheral with the given canonical name, if present.
func (m *Model) Peripheral(name string) (*Peripheral, bool) {
	p, ok := m.peripherals[name]
	return p, ok
}

// Ensure returns the peripheral with the given canonical name, creating it
// with the given route-enable register base (in words) if it does not exist.
// The base of an existing peripheral is never changed: the first document
// that mentions a peripheral wins.
func (m *Model) Ensure(name string, base uint) *Peripheral {
	if p, ok := m.peripherals[name]; ok {
		return p
	}

	p := &Peripheral{
		Name:    name,
		Base:    base,
		signals: make(map[string]*Signal),
	}
	m.peripherals[name] = p
	m.order = append(m.order, name)

	return p
}

// Peripherals returns all peripherals in insertion order.
func (m *Model) Peripherals() []*Peripheral {
	out := make([]*Peripheral, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.peripherals[name])
	}

	return out
}

// Len returns the number of peripherals in the model.
func (m *Model) Len() int {
	return len(m.order)
}

// Peripheral is a hardware block whose signals can be routed to physical
// pins. Base is the word offset of its route-enable register within the GPIO
// routing block, set once by the first register document that mentions the
// peripheral.
type Peripheral struct {
	Name string
	Base uint

	order   []string
	signals map[string]*Signal
}

// Signal returns the signal with the given canonical name, if present.
func (p *Peripheral) Signal(name string) (*Signal, bool) {
	s, ok := p.signals[name]
	return s, ok
}

// Ensure returns the signal with the given canonical name, creating an empty
// one if it does not exist.
func (p *Peripheral) Ensure(name string) *Signal {
	if s, ok := p.signals[name]; ok {
		return s
	}

	s := &Signal{Name: name, pinout: make(map[int]map[int]struct{})}
	p.signals[name] = s
	p.order = append(p.order, name)

	return s
}

// Signals returns all signals in insertion order.
func (p *Peripheral) Signals() []*Signal {
	out := make([]*Signal, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.signals[name])
	}

	return out
}

// Signal is one routable function of a peripheral. EnableBit and RouteOffset
// are nil until discovered from a register document; a nil pointer is the
// explicit "not yet known" state. Both follow first-writer-wins semantics,
// which tolerates redundant definitions across variants of the same family.
type Signal struct {
	Name string

	// EnableBit is the bit position within the owning peripheral's
	// route-enable register that gates routing of this signal.
	EnableBit *uint

	// RouteOffset is the word offset of this signal's route register,
	// relative to the owning peripheral's Base.
	RouteOffset *uint

	pinout map[int]map[int]struct{}
}

// SetEnableBit records the enable bit position unless one is already known.
func (s *Signal) SetEnableBit(bit uint) {
	if s.EnableBit == nil {
		s.EnableBit = &bit
	}
}

// SetRouteOffset records the route register offset unless one is already
// known.
func (s *Signal) SetRouteOffset(offset uint) {
	if s.RouteOffset == nil {
		s.RouteOffset = &offset
	}
}

// Routable reports whether a route register was discovered for this signal.
// Signals that never get one are incomplete and must not be serialized.
func (s *Signal) Routable() bool {
	return s.RouteOffset != nil
}

// AddLocation records that this signal can be routed to the given port bank
// and pin. Locations accumulate by set union across all processed variants.
func (s *Signal) AddLocation(port, pin int) {
	pins, ok := s.pinout[port]
	if !ok {
		pins = make(map[int]struct{})
		s.pinout[port] = pins
	}

	pins[pin] = struct{}{}
}

// HasLocations reports whether any valid location was observed for this
// signal on any variant.
func (s *Signal) HasLocations() bool {
	return len(s.pinout) > 0
}

// Ports returns the port bank indices of the pinout in ascending order.
func (s *Signal) Ports() []int {
	out := make([]int, 0, len(s.pinout))
	for port := range s.pinout {
		out = append(out, port)
	}

	sort.Ints(out)

	return out
}

// Pins returns the valid pin indices for the given port in ascending order.
func (s *Signal) Pins(port int) []int {
	pins, ok := s.pinout[port]
	if !ok {
		return nil
	}

	out := make([]int, 0, len(pins))
	for pin := range pins {
		out = append(out, pin)
	}

	sort.Ints(out)

	return out
}
