package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/harrison/different/internal/executor"
	"github.com/harrison/different/internal/models"
)

func (e *Evaluator) evaluateCommand(ctx context.Context, c models.CommandCheck) (models.Status, error) {
	argv, err := executor.SplitCommand(c.Cmd)
	if err != nil {
		return models.Status{}, fmt.Errorf("command did not run successfully: %w", err)
	}
	e.logger().LogDebug(fmt.Sprintf("running %q in %s", argv, e.Base))

	runner := e.Runner
	if runner == nil {
		runner = executor.NewExecRunner()
	}
	out, err := runner.Run(ctx, argv, e.Base, e.Variables)
	if err != nil {
		return models.Status{}, fmt.Errorf("command did not run successfully: %w", err)
	}

	if out.ExitCode != c.Code {
		return models.Fail("Command %s exited with unexpected code %d (expected %d)", c.Cmd, out.ExitCode, c.Code), nil
	}

	if status := e.streamMatches("stdout", out.Stdout, c.ExpectedStdout, c.StdoutContains); status.Failed() {
		return status, nil
	}
	if status := e.streamMatches("stderr", out.Stderr, c.ExpectedStderr, c.StderrContains); status.Failed() {
		return status, nil
	}

	return models.Success(), nil
}

// streamMatches compares captured output to an exact expectation. The
// contains fragments are only checked when an exact expectation is set.
func (e *Evaluator) streamMatches(stream string, captured []byte, expected *string, contains []string) models.Status {
	if expected == nil {
		return models.Success()
	}

	actual := strings.ToValidUTF8(string(captured), "\uFFFD")
	if actual != *expected {
		e.textsMatch("expected "+stream, *expected, "actual "+stream, actual)
		return models.Fail("%s did not match expected output", stream)
	}

	for _, fragment := range contains {
		if !strings.Contains(actual, fragment) {
			return models.Fail("%s did not contain expected fragment '%s'", stream, fragment)
		}
	}

	return models.Success()
}
