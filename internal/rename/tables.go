// Package rename corrects known naming divergences between the two upstream
// data sources. The register-description documents and the routing-capability
// documents were authored independently, so a handful of peripherals and
// signals carry different names in each; these tables canonicalize them at
// ingestion time. Lookup is purely cosmetic normalization with an identity
// default.
package rename

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTables []byte

// Tables holds the three rename directions.
type Tables struct {
	// Peripherals maps register-document peripheral names to canonical names.
	Peripherals map[string]string `yaml:"peripherals"`

	// Signals maps register-document signal names to canonical names.
	Signals map[string]string `yaml:"signals"`

	// RoutingSignals maps canonical signal names to the names used by the
	// routing-capability documents. Applied only when looking up, never
	// stored.
	RoutingSignals map[string]string `yaml:"routing_signals"`
}

var defaults = sync.OnceValue(func() Tables {
	t, err := Parse(defaultTables)
	if err != nil {
		panic(fmt.Sprintf("embedded rename tables: %v", err))
	}

	return t
})

// Default returns the built-in rename tables.
func Default() Tables {
	return defaults()
}

// Parse parses YAML data into rename tables.
func Parse(data []byte) (Tables, error) {
	var t Tables

	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("parsing rename tables: %w", err)
	}

	return t, nil
}

// LoadFile loads rename tables from a YAML file, for device families whose
// divergences are not covered by the built-in tables.
func LoadFile(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("reading rename tables %s: %w", path, err)
	}

	return Parse(data)
}

// Peripheral canonicalizes a register-document peripheral name.
func (t Tables) Peripheral(name string) string {
	if canonical, ok := t.Peripherals[name]; ok {
		return canonical
	}

	return name
}

// Signal canonicalizes a register-document signal name.
func (t Tables) Signal(name string) string {
	if canonical, ok := t.Signals[name]; ok {
		return canonical
	}

	return name
}

// RoutingSignal returns the routing-document name for a canonical signal.
func (t Tables) RoutingSignal(name string) string {
	if routing, ok := t.RoutingSignals[name]; ok {
		return routing
	}

	return name
}
