package check

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/different/internal/display"
	"github.com/harrison/different/internal/logger"
	"github.com/harrison/different/internal/models"
)

// Runner evaluates a suite's checks strictly in order, one at a time.
type Runner struct {
	Evaluator *Evaluator
	Out       io.Writer // per-check results; nil discards them
	Color     bool
	Logger    Logger
}

// NewRunner creates a Runner writing results to out.
func NewRunner(ev *Evaluator, out io.Writer) *Runner {
	return &Runner{Evaluator: ev, Out: out, Logger: ev.Logger}
}

// Run evaluates every check and aggregates the verdicts. Failing checks do
// not stop the run. A fatal error stops it immediately; the partial report
// is returned along with a *CheckError.
func (r *Runner) Run(ctx context.Context, checks []models.Check) (*models.Report, error) {
	var log Logger = logger.NewNoOpLogger()
	if r.Logger != nil {
		log = r.Logger
	}

	report := &models.Report{RunID: uuid.NewString()}
	log.LogInfo(fmt.Sprintf("run %s: evaluating %d check(s) in %s", report.RunID, len(checks), r.Evaluator.Base))

	start := time.Now()
	defer func() { report.Duration = time.Since(start) }()

	for i, c := range checks {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		checkStart := time.Now()
		status, err := r.Evaluator.Evaluate(ctx, c.Type)
		if err != nil {
			return report, &CheckError{Index: i, Name: c.Name, Kind: kindOf(c.Type), Err: err}
		}

		result := models.Result{Check: c, Status: status, Duration: time.Since(checkStart)}
		report.Add(result)
		log.LogDebug(fmt.Sprintf("check %q: %s", c.Name, status))

		if r.Out != nil {
			display.PrintResult(r.Out, i, len(checks), result, r.Color)
		}
	}

	return report, nil
}
