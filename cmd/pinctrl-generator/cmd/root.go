package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pinctrl-generator/internal/logging"
)

var (
	// Global flags
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "pinctrl-generator",
	Short: "Generate Silicon Labs pin-control headers from SVD and Pin Tool data",
	Long: `pinctrl-generator reconciles two upstream data sources - CMSIS-SVD
register descriptions and Pin Tool routing data - into one routing model per
device family, and renders it as a devicetree pinctrl header.

Examples:
  pinctrl-generator gen -f xg24 -w ./work -o ./out   # Generate xg24-pinctrl.h
  pinctrl-generator families                         # List known families
  pinctrl-generator dump -f xg22 -w ./work           # Inspect the raw model`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "info"
		if verbose {
			level = "debug"
		}

		logging.Setup(level, logFormat)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text|json)")
}
