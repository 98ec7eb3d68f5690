// Package executor spawns the subprocesses used by command checks.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/google/shlex"
)

var (
	// ErrEmptyCommand indicates a command string produced no words.
	ErrEmptyCommand = errors.New("empty command")

	// ErrUnableToRun indicates the process could not be started.
	ErrUnableToRun = errors.New("unable to run command")
)

// Output is the captured result of a finished process.
type Output struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// CommandRunner abstracts process execution for testability.
type CommandRunner interface {
	Run(ctx context.Context, argv []string, dir string, env map[string]string) (*Output, error)
}

// ExecRunner runs processes with os/exec. It blocks until the child exits;
// no timeout is applied beyond ctx cancellation.
type ExecRunner struct{}

// NewExecRunner creates a CommandRunner that executes real processes.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts argv[0] with the remaining words as arguments, in dir, with env
// added on top of the inherited environment. A non-zero exit is reported
// through Output.ExitCode, not as an error.
func (r *ExecRunner) Run(ctx context.Context, argv []string, dir string, env map[string]string) (*Output, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), EnvOverlay(env)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
	default:
		return nil, fmt.Errorf("%w %s: %w", ErrUnableToRun, strings.Join(argv, " "), err)
	}

	return &Output{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}, nil
}

// EnvOverlay formats env as KEY=VALUE entries sorted by key.
func EnvOverlay(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, k+"="+env[k])
	}
	return entries
}

// SplitCommand tokenizes cmd using POSIX shell word splitting rules.
func SplitCommand(cmd string) ([]string, error) {
	argv, err := shlex.Split(cmd)
	if err != nil {
		return nil, fmt.Errorf("unable to parse command %q: %w", cmd, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyCommand, cmd)
	}
	return argv, nil
}
