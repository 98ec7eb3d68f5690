package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Checks     []string // Related check names (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when useColor is set
func (w Warning) Display(out io.Writer, useColor bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	// Add message with 4-space indent if present
	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	// Add checks with proper singular/plural and indentation
	if len(w.Checks) > 0 {
		b.WriteString("    ")
		if len(w.Checks) == 1 {
			b.WriteString("Affected check:\n")
		} else {
			b.WriteString("Affected checks:\n")
		}

		for i, name := range w.Checks {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, name))
			b.WriteString("\n")
		}
	}

	// Add suggestion with 4-space indent if present
	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, painter(color.FgYellow, useColor).Sprint(b.String()))
}

// WarnChecks creates a warning naming the given checks
func WarnChecks(title string, checks []string) Warning {
	return Warning{
		Title:  title,
		Checks: checks,
	}
}
