package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/utkarshg1/pycargo/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `pycargo`.
var rootCmd = &cobra.Command{
	Use:   "pycargo",
	Short: "Bootstrap a Python data science project",

	// PersistentPreRun runs before any subcommand; it initializes the
	// logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	// Errors are logged by the commands themselves; cobra only supplies
	// the exit classification.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute registers global flags and runs the command tree. It is the
// entry point for the CLI when invoked by the user. The process exits
// non-zero only when a fatal-class step failed.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
