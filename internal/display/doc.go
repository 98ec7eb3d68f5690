// Package display formats user-facing check output: per-check result lines,
// the run summary, and warnings.
//
// # Results
//
// Print each result as soon as its check finishes:
//
//	display.PrintResult(os.Stdout, i, len(checks), result, useColor)
//
// and the aggregate once the run ends:
//
//	display.PrintSummary(os.Stdout, report, useColor)
//
// # Warnings
//
//	warning := display.Warning{
//	    Title:      "Suite contains HTTP checks",
//	    Checks:     []string{"api responds"},
//	    Suggestion: "Remove them or replace them with command checks",
//	}
//	warning.Display(os.Stderr, useColor)
//
// All functions take an io.Writer and an explicit color flag; nothing reads
// or changes global color state.
package display
