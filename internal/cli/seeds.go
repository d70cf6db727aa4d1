package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bitlife/pkg/core"
)

// NewSeedsCommand creates the command listing registered seeds.
func NewSeedsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seeds",
		Short: "List registered seeds (* marks the configured one)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range core.SeedNames() {
				marker := ""
				if name == rootOpts.Config.Seed {
					marker = " *"
				}
				if _, err := fmt.Fprintf(out, "%s%s\n", name, marker); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
