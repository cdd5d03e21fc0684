// Package source locates the already-extracted upstream document trees on
// disk. The fetch step materializes the CMSIS packs and the Pin Tool archive
// under a work directory; this package reads them back as parsed documents.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"pinctrl-generator/internal/aggregate"
	"pinctrl-generator/internal/portio"
	"pinctrl-generator/internal/svd"
)

// Dir serves documents from an extracted archive layout:
//
//	<workdir>/pack/<variant>/SVD/<VARIANT>/*.svd
//	<workdir>/pin_tool/platform/hwconf_data/pin_tool/<variant>/*/PORTIO.portio
type Dir struct {
	workdir string
}

// NewDir creates a document source rooted at workdir.
func NewDir(workdir string) *Dir {
	return &Dir{workdir: workdir}
}

// RegisterDocs loads every register-description document of the variant's
// CMSIS pack, one per part number. An empty or missing pack directory is a
// hard error: the model must not be built from a partial document set.
func (d *Dir) RegisterDocs(variant string) ([]aggregate.RegisterDoc, error) {
	pattern := filepath.Join(d.workdir, "pack", variant, "SVD", strings.ToUpper(variant), "*.svd")

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing SVD files for %s: %w", variant, err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no SVD files for %s under %s", variant, pattern)
	}

	docs := make([]aggregate.RegisterDoc, 0, len(matches))

	for _, path := range matches {
		dev, err := svd.LoadFile(path)
		if err != nil {
			return nil, err
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		docs = append(docs, aggregate.RegisterDoc{Name: name, Device: dev})
	}

	return docs, nil
}

// RoutingDocs loads every routing-capability document of the variant's Pin
// Tool data, one per kit.
func (d *Dir) RoutingDocs(variant string) ([]aggregate.RoutingDoc, error) {
	pattern := filepath.Join(d.workdir,
		"pin_tool", "platform", "hwconf_data", "pin_tool", variant, "*", "PORTIO.portio")

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing routing documents for %s: %w", variant, err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no routing documents for %s under %s", variant, pattern)
	}

	docs := make([]aggregate.RoutingDoc, 0, len(matches))

	for _, path := range matches {
		doc, err := portio.LoadFile(path)
		if err != nil {
			return nil, err
		}

		// The kit name is the document's parent directory.
		docs = append(docs, aggregate.RoutingDoc{Name: filepath.Base(filepath.Dir(path)), Doc: doc})
	}

	return docs, nil
}
