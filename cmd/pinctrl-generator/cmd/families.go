package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List known device families and their chip variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadFamilies()
		if err != nil {
			return err
		}

		for _, name := range cfg.FamilyNames() {
			variants, err := cfg.Variants(name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s:", name)
			for _, variant := range variants {
				fmt.Fprintf(cmd.OutOrStdout(), " %s", variant)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(familiesCmd)

	familiesCmd.Flags().StringVar(&familiesFile, "families", "", "YAML file overriding the built-in family table")
}
