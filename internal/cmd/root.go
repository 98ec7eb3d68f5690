package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for different
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "different",
		Short: "Line diffs and checks for generated output",
		Long: `Different compares text line by line and verifies generated output.

The diff command prints a line-numbered, colorized report for two files.
The check command runs a YAML suite of file, directory, command and
variable checks against a directory and reports a diff for every
mismatched text.`,
		Version: Version,
		// main prints the error; silence usage and cobra's own copy
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: .different/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	cmd.AddCommand(NewDiffCommand())
	cmd.AddCommand(NewCheckCommand())

	return cmd
}
