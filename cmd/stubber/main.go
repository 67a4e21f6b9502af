package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/stubber/project"
)

var (
	rootDir   string
	verbosity int
	logFile   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stubber",
		Short: "Find what a gcj link still needs from excluded classes",
		Long: `Find what a gcj link still needs from excluded classes.

Classes left out of a native compilation surface as "undefined reference"
errors when the program is linked. stubber reads that linker output and
reconstructs the classes, constructors, methods and fields that stubs
have to provide.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			proj, err := project.LoadFrom(rootDir)
			if err != nil {
				return err
			}
			level, path := logSettings(proj)
			commonlog.Configure(level, path)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", ".", "project root containing .stubber/config.yaml")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newExcludedCmd())
	rootCmd.AddCommand(newDemangleCmd())
	return rootCmd
}

// logSettings merges the -v and --log-file flags with the log section of
// the configuration. The higher verbosity wins; the flag wins for the file.
func logSettings(proj *project.Project) (int, *string) {
	level := max(verbosity, proj.Log.Verbosity)
	path := logFile
	if path == "" {
		path = proj.Path(proj.Log.File)
	}
	if path == "" {
		return level, nil
	}
	return level, &path
}
