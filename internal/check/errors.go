package check

import (
	"errors"
	"fmt"
)

var (
	// ErrHTTPNotImplemented is returned when an HTTP check is evaluated.
	ErrHTTPNotImplemented = errors.New("http checks are not implemented")

	// ErrUnknownCheckType is returned for a CheckType the evaluator does not
	// handle.
	ErrUnknownCheckType = errors.New("unknown check type")
)

// CheckError is a fatal error raised while evaluating a named check. It
// aborts the run; ordinary assertion failures are reported as a failing
// models.Status instead.
type CheckError struct {
	Index int    // Position of the check in the suite
	Name  string // Check name
	Kind  string // Check kind
	Err   error  // Underlying error
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	return fmt.Sprintf("check %d (%s %q): %v", e.Index+1, e.Kind, e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *CheckError) Unwrap() error {
	return e.Err
}
