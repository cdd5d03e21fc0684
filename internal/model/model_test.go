package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureFirstWriterWinsOnBase(t *testing.T) {
	m := New()

	p := m.Ensure("TIMER0", 8)
	assert.Equal(t, uint(8), p.Base)

	// A later document must not move the base.
	again := m.Ensure("TIMER0", 12)
	assert.Same(t, p, again)
	assert.Equal(t, uint(8), p.Base)
	assert.Equal(t, 1, m.Len())
}

func TestSignalFirstWriterWins(t *testing.T) {
	m := New()
	s := m.Ensure("TIMER0", 8).Ensure("CC0")

	require.Nil(t, s.EnableBit)
	require.False(t, s.Routable())

	s.SetEnableBit(3)
	s.SetRouteOffset(1)

	// Redundant definitions from later variants are ignored.
	s.SetEnableBit(7)
	s.SetRouteOffset(9)

	require.NotNil(t, s.EnableBit)
	assert.Equal(t, uint(3), *s.EnableBit)
	require.NotNil(t, s.RouteOffset)
	assert.Equal(t, uint(1), *s.RouteOffset)
	assert.True(t, s.Routable())
}

func TestInsertionOrderIsPreserved(t *testing.T) {
	m := New()
	m.Ensure("USART0", 4).Ensure("TX")
	m.Ensure("TIMER0", 8)
	m.Ensure("USART0", 4).Ensure("RX")
	m.Ensure("ACMP0", 2)

	var names []string
	for _, p := range m.Peripherals() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"USART0", "TIMER0", "ACMP0"}, names)

	usart, ok := m.Peripheral("USART0")
	require.True(t, ok)

	var signals []string
	for _, s := range usart.Signals() {
		signals = append(signals, s.Name)
	}
	assert.Equal(t, []string{"TX", "RX"}, signals)
}

func TestPinoutUnionAndOrdering(t *testing.T) {
	m := New()
	s := m.Ensure("TIMER0", 8).Ensure("CC0")

	assert.False(t, s.HasLocations())

	s.AddLocation(1, 7)
	s.AddLocation(0, 5)
	s.AddLocation(1, 2)
	s.AddLocation(1, 7) // duplicate, set semantics

	assert.True(t, s.HasLocations())
	assert.Equal(t, []int{0, 1}, s.Ports())
	assert.Equal(t, []int{5}, s.Pins(0))
	assert.Equal(t, []int{2, 7}, s.Pins(1))
	assert.Nil(t, s.Pins(3))
}
