package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abbrevidx/abbrevidx/internal/diag"
)

// log is the CLI's logrus instance; it backs the matcher's
// scorer-divergence diagnostics, which it prints at debug level (--verbose).
// Commands print their own output with fmt.
var log = logrus.New()

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "abbrevidx",
	Short: "Abbreviation matcher index CLI",
	Long: `abbrevidx is a command-line harness around the abbrevidx matcher:
an in-memory index from short user-typed patterns (abbreviations, camel
sigils, optional wildcards) to registered entry names.

This binary exists to drive the library end to end:
  - load   parses an entry-set file and reports what was registered
  - query  runs a pattern against a loaded entry set
  - keyword synthesizes a short unambiguous keyword for a named entry`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		diag.SetDefault(diag.FuncSink(func(format string, args ...any) {
			log.Debugf(format, args...)
		}))
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
