// Package svd reads the subset of a CMSIS-SVD register-description document
// needed to derive pin routing: peripherals, their registers (name, address
// offset) and register bit-fields (name, bit offset).
package svd

import (
	"encoding/xml"
	"strconv"
)

// Uint is an unsigned integer that accepts the SVD numeric literal forms
// (decimal, 0x…, 0b…) as understood by strconv with base 0.
type Uint uint

func (u *Uint) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}

	v, err := strconv.ParseUint(s, 0, 0)
	*u = Uint(v)

	return err
}

// Device is the root of an SVD document, one per chip variant.
type Device struct {
	Name        string        `xml:"name"`
	Series      string        `xml:"series"`
	Description string        `xml:"description"`
	Peripherals []*Peripheral `xml:"peripherals>peripheral"`
}

// Peripheral returns the peripheral with the given name, if present.
func (d *Device) Peripheral(name string) (*Peripheral, bool) {
	for _, p := range d.Peripherals {
		if p.Name == name {
			return p, true
		}
	}

	return nil, false
}

type Peripheral struct {
	Name        string      `xml:"name"`
	Description string      `xml:"description"`
	BaseAddress Uint        `xml:"baseAddress"`
	Registers   []*Register `xml:"registers>register"`
}

// Register describes one register. AddressOffset is in bytes relative to the
// peripheral base address.
type Register struct {
	Name          string   `xml:"name"`
	Description   string   `xml:"description"`
	AddressOffset Uint     `xml:"addressOffset"`
	Fields        []*Field `xml:"fields>field"`
}

type Field struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	BitOffset   Uint   `xml:"bitOffset"`
	BitWidth    Uint   `xml:"bitWidth"`
}
