package display

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/different/internal/models"
)

func painter(attr color.Attribute, enabled bool) *color.Color {
	c := color.New(attr)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// PrintResult writes one line for a finished check:
// "[N/Total] PASS name" or "[N/Total] FAIL name: reason".
func PrintResult(w io.Writer, index, total int, result models.Result, useColor bool) {
	label := painter(color.FgGreen, useColor).Sprint("PASS")
	suffix := ""
	if result.Status.Failed() {
		label = painter(color.FgRed, useColor).Sprint("FAIL")
		suffix = ": " + result.Status.Reason
	}
	counter := painter(color.FgCyan, useColor).Sprintf("[%d/%d]", index+1, total)
	fmt.Fprintf(w, "%s %s %s%s\n", counter, label, result.Check.Name, suffix)
}

// PrintSummary writes the totals of a run and lists the failed checks.
func PrintSummary(w io.Writer, report *models.Report, useColor bool) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Check Summary (run %s):\n", report.RunID)
	fmt.Fprintf(w, "  Total checks: %d\n", len(report.Results))
	fmt.Fprintf(w, "  Passed: %s\n", painter(color.FgGreen, useColor).Sprint(report.Passed))
	if report.Failed > 0 {
		fmt.Fprintf(w, "  Failed: %s\n", painter(color.FgRed, useColor).Sprint(report.Failed))
	} else {
		fmt.Fprintf(w, "  Failed: 0\n")
	}
	fmt.Fprintf(w, "  Duration: %s\n", report.Duration.Round(time.Millisecond))

	if report.Failed == 0 {
		return
	}
	fmt.Fprintf(w, "\nFailed Checks:\n")
	for _, r := range report.Results {
		if r.Status.Failed() {
			fmt.Fprintf(w, "  - %s (%s): %s\n", r.Check.Name, r.Check.Type.Kind(), r.Status.Reason)
		}
	}
}
