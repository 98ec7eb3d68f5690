package diff

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrConflictingColorFlags is returned when both force-color and no-color
// are requested.
var ErrConflictingColorFlags = errors.New("force color and no color are mutually exclusive")

// ColorPolicy is the resolved decision on whether a report is colorized.
type ColorPolicy int

// Color policies.
const (
	ColorAuto ColorPolicy = iota
	ColorAlways
	ColorNever
)

// String returns the policy name.
func (p ColorPolicy) String() string {
	switch p {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ColorPolicy resolves the force/no color flags once, before rendering.
func (s *Settings) ColorPolicy() (ColorPolicy, error) {
	switch {
	case s.ForceColor && s.NoColor:
		return ColorAuto, ErrConflictingColorFlags
	case s.ForceColor:
		return ColorAlways, nil
	case s.NoColor:
		return ColorNever, nil
	default:
		return ColorAuto, nil
	}
}

// Enabled reports whether output written to w should carry color codes.
// ColorAuto enables color only for terminals and honors NO_COLOR.
func (p ColorPolicy) Enabled(w io.Writer) bool {
	switch p {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
