package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/stubber/linkerr"
)

func newDemangleCmd() *cobra.Command {
	var classify bool

	cmd := &cobra.Command{
		Use:   "demangle <symbol>...",
		Short: "Print the Java form of native symbols",
		Long: `Print the Java form of symbols as they appear in gcj linker errors.

Examples:
  stubber demangle 'java::awt::Frame::class$'
  stubber demangle --classify 'void java::awt::Frame::pack()'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				reference := linkerr.Demangle(raw)
				if !classify {
					fmt.Fprintln(cmd.OutOrStdout(), reference)
					continue
				}
				sym := linkerr.Classify(reference, nil)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", reference, sym.Kind)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&classify, "classify", false, "also print what the symbol denotes (fields are never recognized here)")
	return cmd
}
