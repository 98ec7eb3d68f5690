package models

import "fmt"

// Status is the verdict of a single check: success, or a failure with a
// human-readable reason.
type Status struct {
	failed bool
	Reason string
}

// Success returns a passing status.
func Success() Status {
	return Status{}
}

// Fail returns a failing status with a formatted reason.
func Fail(format string, args ...any) Status {
	return Status{failed: true, Reason: fmt.Sprintf(format, args...)}
}

// Failed reports whether the check failed.
func (s Status) Failed() bool {
	return s.failed
}

// String returns "PASS" or "FAIL: <reason>".
func (s Status) String() string {
	if !s.failed {
		return "PASS"
	}
	return "FAIL: " + s.Reason
}
