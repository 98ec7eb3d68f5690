package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/different/internal/diff"
	"github.com/spf13/cobra"
)

// NewDiffCommand creates and returns the diff subcommand
func NewDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <left> <right>",
		Short: "Print a line diff of two files",
		Long: `Align two files line by line and print a numbered report.

Lines only in the left file are marked "-", lines only in the right file
are marked "+" and shared lines are marked "|". Nothing is printed when
the files are identical.

Exit code: 0 unless a file cannot be read`,
		Args:         cobra.ExactArgs(2),
		RunE:         runDiff,
		SilenceUsage: true,
	}

	addDiffFlags(cmd)

	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	settings, err := cfg.DiffSettings()
	if err != nil {
		return err
	}

	left, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	right, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}

	leftName := displayName(args[0])
	if v := changedString(cmd, "left-name"); v != nil {
		leftName = *v
	}
	rightName := displayName(args[1])
	if v := changedString(cmd, "right-name"); v != nil {
		rightName = *v
	}

	maxLines := max(len(diff.SplitLines(string(left))), len(diff.SplitLines(string(right))))
	settings = settings.WithNames(leftName, rightName).WithMaxLineNumber(maxLines)

	log := newLogger(cmd, cfg)
	log.LogDebug(fmt.Sprintf("diff %s %s (max line %d)", leftName, rightName, maxLines))

	out := cmd.OutOrStdout()
	_, report, err := diff.Report(string(left), string(right), &settings, out)
	if err != nil {
		return err
	}
	fmt.Fprint(out, report)
	return nil
}

// displayName shows path as "./rel" when it lies under the working
// directory, and unchanged otherwise.
func displayName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return "./" + filepath.ToSlash(rel)
}
