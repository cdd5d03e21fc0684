// Package config holds the fixed family-to-variant membership data. The
// membership is configuration, not discovered: each family groups the chip
// variants that share a pin-routing register layout.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed families.yaml
var defaultFamilies []byte

// Config maps family identifiers to their chip variant identifiers.
type Config struct {
	Families map[string][]string `yaml:"families"`
}

var defaults = sync.OnceValue(func() Config {
	c, err := Parse(defaultFamilies)
	if err != nil {
		panic(fmt.Sprintf("embedded families table: %v", err))
	}

	return c
})

// Default returns the built-in family table.
func Default() Config {
	return defaults()
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing families config: %w", err)
	}

	return c, nil
}

// LoadFile loads a family table from a YAML file, for device families not
// covered by the built-in table.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading families config %s: %w", path, err)
	}

	return Parse(data)
}

// Variants returns the chip variants of a family, in the order they should be
// processed.
func (c Config) Variants(family string) ([]string, error) {
	variants, ok := c.Families[family]
	if !ok {
		return nil, fmt.Errorf("unknown family %q (known: %v)", family, c.FamilyNames())
	}

	return variants, nil
}

// FamilyNames returns all known family identifiers, sorted.
func (c Config) FamilyNames() []string {
	names := make([]string, 0, len(c.Families))
	for name := range c.Families {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
