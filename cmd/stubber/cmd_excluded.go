package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExcludedCmd() *cobra.Command {
	var exclusions exclusionFlags

	cmd := &cobra.Command{
		Use:   "excluded",
		Short: "Print the excluded classes",
		Long: `Print the classes treated as excluded from compilation, one per line.

The set combines excluded.classes, excluded.lists and excluded.archives
from the configuration with the --exclude* flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, set, err := exclusions.excludedSet()
			if err != nil {
				return err
			}
			for _, name := range set.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	exclusions.register(cmd.Flags())
	return cmd
}
