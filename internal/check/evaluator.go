// Package check evaluates typed checks against a directory of generated
// output and runs ordered suites of them.
package check

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/harrison/different/internal/diff"
	"github.com/harrison/different/internal/executor"
	"github.com/harrison/different/internal/logger"
	"github.com/harrison/different/internal/models"
	"github.com/harrison/different/internal/templates"
)

// Logger receives diagnostic messages from evaluation.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
}

// Evaluator evaluates single checks. Variables are read-only during
// evaluation.
type Evaluator struct {
	Base      string
	Variables map[string]string
	Templates templates.Renderer
	Runner    executor.CommandRunner

	// PrintDiffs writes a diff report to Diffs whenever a textual
	// comparison fails.
	PrintDiffs   bool
	Diffs        io.Writer
	DiffSettings diff.Settings
	ColorPolicy  diff.ColorPolicy

	Logger Logger
}

// NewEvaluator returns an evaluator with an exec runner, default diff
// settings and diffs printed to stdout.
func NewEvaluator(base string, variables map[string]string, tpl templates.Renderer) *Evaluator {
	return &Evaluator{
		Base:         base,
		Variables:    variables,
		Templates:    tpl,
		Runner:       executor.NewExecRunner(),
		PrintDiffs:   true,
		Diffs:        os.Stdout,
		DiffSettings: diff.DefaultSettings(),
		ColorPolicy:  diff.ColorAuto,
	}
}

// Evaluate runs one check. A failing assertion is returned as a failing
// status; the error result is reserved for fatal conditions such as a
// missing template, an empty command or an unimplemented check kind.
func (e *Evaluator) Evaluate(ctx context.Context, ct models.CheckType) (models.Status, error) {
	e.logger().LogDebug(fmt.Sprintf("evaluating %s check", kindOf(ct)))

	switch c := ct.(type) {
	case models.FileCheck:
		return e.evaluateFile(c)
	case models.DirectoryCheck:
		return e.evaluateDirectory(c)
	case models.CommandCheck:
		return e.evaluateCommand(ctx, c)
	case models.HTTPCheck:
		return e.evaluateHTTP(c)
	case models.VarSetCheck:
		return e.evaluateVarSet(c)
	default:
		return models.Status{}, fmt.Errorf("%w: %T", ErrUnknownCheckType, ct)
	}
}

func kindOf(ct models.CheckType) string {
	if ct == nil {
		return "nil"
	}
	return ct.Kind()
}

func (e *Evaluator) logger() Logger {
	if e.Logger == nil {
		return logger.NewNoOpLogger()
	}
	return e.Logger
}

// resolve joins a relative path onto Base. Absolute paths are used as is.
func (e *Evaluator) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.Base, path)
}

// textsMatch compares expected to actual line by line. When they differ
// and diff printing is enabled, the report is written immediately. Names
// already set in DiffSettings take precedence over the given ones.
func (e *Evaluator) textsMatch(expectedName, expected, actualName, actual string) bool {
	a := diff.AlignText(expected, actual)
	if a.IsIdentical() {
		return true
	}
	if !e.PrintDiffs || e.Diffs == nil {
		return false
	}

	settings := e.DiffSettings.WithMaxLineNumber(max(len(a.LeftLines()), len(a.RightLines())))
	if settings.LeftName == nil {
		settings.LeftName = &expectedName
	}
	if settings.RightName == nil {
		settings.RightName = &actualName
	}
	report := diff.NewRenderer(&settings, e.ColorPolicy, e.Diffs).Render(a)
	fmt.Fprintln(e.Diffs, report)
	return false
}
