package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/stubber/format"
	"github.com/dhamidi/stubber/linkerr"
)

func newParseCmd() *cobra.Command {
	var (
		exclusions     exclusionFlags
		outputFormat   string
		workers        int
		runtimeArchive string
		progress       bool
	)

	cmd := &cobra.Command{
		Use:   "parse [linker-output]",
		Short: "Reconstruct missing classes from linker output",
		Long: `Reconstruct missing classes from the output of a failed gcj link.

Reads the linker output from the given file, or from stdin when no file
or "-" is given, and prints every class, constructor, method and field
referenced but not defined. References that cannot be classified are
logged as warnings and skipped.

Examples:
  gcj --main=Main *.o -o app 2>&1 | stubber parse --exclude-archive lib/awt.jar
  stubber parse link.log --format json --runtime-archive /opt/gcj/libgcj.jar`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) > 0 {
				input = args[0]
			}

			proj, set, err := exclusions.excludedSet()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				proj.Output.Format = outputFormat
			}
			if cmd.Flags().Changed("workers") {
				proj.Parse.Workers = workers
			}
			if cmd.Flags().Changed("runtime-archive") {
				proj.Runtime.Archive = runtimeArchive
			}
			if err := proj.Validate(); err != nil {
				return err
			}

			r, closeInput, err := openInput(input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeInput()

			lines, err := linkerr.ReadLines(r)
			if err != nil {
				return err
			}

			collector := &linkerr.Collector{}
			listeners := linkerr.Listeners{linkerr.LogListener{}, collector}
			var bar *progressListener
			if progress {
				bar = newProgressListener(cmd.ErrOrStderr())
				listeners = append(listeners, bar)
			}

			parser := &linkerr.Parser{
				Excluded: set,
				Archive:  proj.RuntimeArchive(),
				Listener: listeners,
				Workers:  proj.Parse.Workers,
			}
			registry, err := parser.Parse(cmd.Context(), lines)
			if bar != nil {
				bar.Finish()
			}
			if err != nil {
				return err
			}

			enc, err := format.NewEncoder(proj.Output.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := enc.Encode(registry.Classes()); err != nil {
				return fmt.Errorf("write result: %w", err)
			}

			stats := registry.Stats()
			fmt.Fprintf(cmd.ErrOrStderr(),
				"%d classes (%d inner), %d constructors, %d methods, %d fields; %d references unrecognized\n",
				stats.Classes, stats.InnerClasses, stats.Constructors, stats.Methods, stats.Fields,
				len(collector.Diagnostics))
			return nil
		},
	}

	exclusions.register(cmd.Flags())
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format: text, json, toml or yaml")
	cmd.Flags().IntVarP(&workers, "workers", "j", 1, "extract references from this many chunks of input concurrently")
	cmd.Flags().StringVar(&runtimeArchive, "runtime-archive", "", "runtime library archive recorded on every class (e.g. libgcj.jar)")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a spinner while classifying")

	return cmd
}

func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open linker output: %w", err)
	}
	return f, func() { f.Close() }, nil
}
