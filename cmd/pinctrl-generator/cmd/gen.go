package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pinctrl-generator/internal/aggregate"
	"pinctrl-generator/internal/config"
	"pinctrl-generator/internal/diagnostic"
	"pinctrl-generator/internal/fetch"
	"pinctrl-generator/internal/gen"
	"pinctrl-generator/internal/model"
	"pinctrl-generator/internal/rename"
	"pinctrl-generator/internal/source"
)

var (
	workdir      string
	outDir       string
	family       string
	familiesFile string
	offline      bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate the pin-control header for one device family",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, diags, err := buildModel(cmd, family)
		if err != nil {
			return err
		}

		content, err := gen.Render(family, m, &diags)
		if err != nil {
			return err
		}

		logWarnings(diags)

		path, err := gen.WriteHeader(content, outDir, family)
		if err != nil {
			return err
		}

		slog.Info("wrote pin-control header",
			"path", path, "peripherals", m.Len(), "warnings", len(diags.Warnings))

		return nil
	},
}

// buildModel runs the full pipeline up to the aggregated model: resolve the
// family's variants, materialize the upstream archives (unless offline), then
// aggregate across all variants.
func buildModel(cmd *cobra.Command, family string) (*model.Model, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	cfg, err := loadFamilies()
	if err != nil {
		return nil, diags, err
	}

	variants, err := cfg.Variants(family)
	if err != nil {
		return nil, diags, err
	}

	if !offline {
		client := fetch.NewClient(workdir)
		if err := client.PinTool(cmd.Context()); err != nil {
			return nil, diags, err
		}

		for _, variant := range variants {
			if err := client.Pack(cmd.Context(), variant); err != nil {
				return nil, diags, err
			}
		}
	}

	engine := aggregate.NewEngine(source.NewDir(workdir), rename.Default())

	m, diags, err := engine.Run(variants)
	if err != nil {
		return nil, diags, fmt.Errorf("aggregating %s: %w", family, err)
	}

	return m, diags, nil
}

func loadFamilies() (config.Config, error) {
	if familiesFile != "" {
		return config.LoadFile(familiesFile)
	}

	return config.Default(), nil
}

func logWarnings(diags diagnostic.Diagnostics) {
	for _, w := range diags.Warnings {
		slog.Warn(w.Message, "code", w.Code,
			"peripheral", w.Peripheral, "signal", w.Signal, "variant", w.Variant)
	}
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringVarP(&workdir, "workdir", "w", ".", "work directory for extracted archives")
	genCmd.Flags().StringVarP(&outDir, "out", "o", "./out", "output directory for the generated header")
	genCmd.Flags().StringVarP(&family, "family", "f", "xg24", "device family to generate for")
	genCmd.Flags().StringVar(&familiesFile, "families", "", "YAML file overriding the built-in family table")
	genCmd.Flags().BoolVar(&offline, "offline", false, "skip downloading upstream archives")
}
