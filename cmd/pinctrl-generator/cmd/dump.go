package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Aggregate a family and dump the raw routing model",
	Long: `dump runs the same aggregation as gen but prints the in-memory model
instead of rendering a header. Useful when chasing naming mismatches between
the register and routing documents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, diags, err := buildModel(cmd, family)
		if err != nil {
			return err
		}

		for _, w := range diags.Warnings {
			fmt.Fprintln(cmd.OutOrStdout(), "WARN "+w.String())
		}

		spew.Fdump(cmd.OutOrStdout(), m)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVarP(&workdir, "workdir", "w", ".", "work directory for extracted archives")
	dumpCmd.Flags().StringVarP(&family, "family", "f", "xg24", "device family to dump")
	dumpCmd.Flags().StringVar(&familiesFile, "families", "", "YAML file overriding the built-in family table")
	dumpCmd.Flags().BoolVar(&offline, "offline", false, "skip downloading upstream archives")
}
