// Package aggregate drives extraction across every chip variant of a family,
// merging the results into one cumulative routing model.
package aggregate

import (
	"fmt"
	"log/slog"

	"pinctrl-generator/internal/diagnostic"
	"pinctrl-generator/internal/extract"
	"pinctrl-generator/internal/model"
	"pinctrl-generator/internal/portio"
	"pinctrl-generator/internal/rename"
	"pinctrl-generator/internal/svd"
)

// RegisterDoc is one parsed register-description document, named by the chip
// part number it describes.
type RegisterDoc struct {
	Name   string
	Device *svd.Device
}

// RoutingDoc is one parsed routing-capability document, named by the kit it
// was authored for. The name identifies the document in no-match warnings.
type RoutingDoc struct {
	Name string
	Doc  *portio.Document
}

// Source supplies the already-extracted upstream document trees for one chip
// variant. Retrieval and unpacking of the archives happens elsewhere; the
// engine only reads parsed documents.
type Source interface {
	RegisterDocs(variant string) ([]RegisterDoc, error)
	RoutingDocs(variant string) ([]RoutingDoc, error)
}

// Engine builds the family model. It owns the model exclusively for the
// duration of a run; variants are processed strictly one after another, so
// the merge policy (first-writer-wins on register layout, set union on
// pinouts) only needs processing order to be deterministic.
type Engine struct {
	src    Source
	tables rename.Tables
}

// NewEngine creates an engine reading documents from src, canonicalizing
// names through the given rename tables.
func NewEngine(src Source, tables rename.Tables) *Engine {
	return &Engine{src: src, tables: tables}
}

// Run builds the aggregated model for the given variants, in the order
// supplied. For each variant every register document is folded in first, then
// every routing document enriches the same entries with pin locations.
//
// Known, tolerated mismatches between the two data sources accumulate as
// warnings in the returned diagnostics. A malformed or absent document is a
// hard failure: the error aborts the family run and no model is returned.
func (e *Engine) Run(variants []string) (*model.Model, diagnostic.Diagnostics, error) {
	m := model.New()

	var diags diagnostic.Diagnostics

	for _, variant := range variants {
		regs, err := e.src.RegisterDocs(variant)
		if err != nil {
			return nil, diags, fmt.Errorf("loading register documents for %s: %w", variant, err)
		}

		for _, doc := range regs {
			slog.Debug("parsing register document", "variant", variant, "device", doc.Name)

			if err := extract.Registers(m, doc.Device, e.tables); err != nil {
				return nil, diags, fmt.Errorf("extracting register model from %s: %w", doc.Name, err)
			}
		}

		routes, err := e.src.RoutingDocs(variant)
		if err != nil {
			return nil, diags, fmt.Errorf("loading routing documents for %s: %w", variant, err)
		}

		for _, doc := range routes {
			slog.Debug("parsing routing document", "variant", variant, "kit", doc.Name)
			extract.Routing(m, doc.Doc, doc.Name, e.tables, &diags)
		}
	}

	return m, diags, nil
}
