// Package portio reads Pin Tool routing-capability documents (PORTIO.portio
// files). A document describes, per peripheral module, named selectors whose
// routes list the candidate physical locations (port bank, pin) a signal can
// be placed on.
package portio

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Document is one parsed PORTIO.portio file. The root element name varies
// between kits; only the portIo subtree is consulted.
type Document struct {
	PortIO PortIO `xml:"portIo"`
}

type PortIO struct {
	PinRoutes PinRoutes `xml:"pinRoutes"`
}

type PinRoutes struct {
	Modules []*Module `xml:"module"`
}

type Module struct {
	Name      string      `xml:"name,attr"`
	Selectors []*Selector `xml:"selector"`
}

type Selector struct {
	Name   string   `xml:"name,attr"`
	Routes []*Route `xml:"route"`
}

type Route struct {
	Name      string      `xml:"name,attr"`
	Locations []*Location `xml:"location"`
}

// Location is one candidate placement: a GPIO port bank index and a pin
// index within that bank.
type Location struct {
	PortBank int `xml:"portBankIndex,attr"`
	Pin      int `xml:"pinIndex,attr"`
}

// FindSelector returns the first selector with the given name inside a module
// with the given name. Module names may repeat across a document; the first
// match wins, following the upstream tool's behavior.
func (d *Document) FindSelector(module, selector string) (*Selector, bool) {
	for _, m := range d.PortIO.PinRoutes.Modules {
		if m.Name != module {
			continue
		}

		for _, s := range m.Selectors {
			if s.Name == selector {
				return s, true
			}
		}
	}

	return nil, false
}

// Route returns the route with the given name, if present.
func (s *Selector) Route(name string) (*Route, bool) {
	for _, r := range s.Routes {
		if r.Name == name {
			return r, true
		}
	}

	return nil, false
}

// LoadFile loads and parses a routing-capability document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading routing document %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing routing document %s: %w", path, err)
	}

	return doc, nil
}

// Parse parses routing-capability XML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshalling routing document: %w", err)
	}

	return &doc, nil
}
