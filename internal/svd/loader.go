package svd

import (
	"encoding/xml"
	"fmt"
	"os"
)

// LoadFile loads and parses an SVD document from the given path.
func LoadFile(path string) (*Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading SVD file %s: %w", path, err)
	}

	dev, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing SVD file %s: %w", path, err)
	}

	return dev, nil
}

// Parse parses SVD XML data into a Device.
func Parse(data []byte) (*Device, error) {
	var dev Device

	if err := xml.Unmarshal(data, &dev); err != nil {
		return nil, fmt.Errorf("unmarshalling SVD document: %w", err)
	}

	return &dev, nil
}
