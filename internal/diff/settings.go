package diff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Default presentation values.
const (
	DefaultLeftMarker   = '-'
	DefaultRightMarker  = '+'
	DefaultMarkerCount  = 4
	DefaultIndentSpaces = 2
	DefaultLeftColor    = color.FgGreen
	DefaultRightColor   = color.FgRed
)

// Settings controls how an Alignment is rendered. A Settings value is
// shared read-only across a render.
type Settings struct {
	LeftName  *string
	RightName *string

	LeftMarker  rune
	RightMarker rune
	MarkerCount int

	// IndentSpaces is nil when unset; an explicit 0 disables the indent.
	IndentSpaces *int

	LeftColor  color.Attribute
	RightColor color.Attribute

	// ForceColor and NoColor are mutually exclusive; see ColorPolicy.
	ForceColor bool
	NoColor    bool

	// MaxLineNumber fixes the width of the line number columns.
	MaxLineNumber *int
}

// DefaultSettings returns settings with the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		LeftMarker:  DefaultLeftMarker,
		RightMarker: DefaultRightMarker,
		MarkerCount: DefaultMarkerCount,
		LeftColor:   DefaultLeftColor,
		RightColor:  DefaultRightColor,
	}.WithIndent(DefaultIndentSpaces)
}

// WithIndent returns a copy of s with an explicit indent.
func (s Settings) WithIndent(n int) Settings {
	s.IndentSpaces = &n
	return s
}

// withDefaults fills zero-valued fields with the defaults. Names, the
// color flags and MaxLineNumber have no default.
func (s Settings) withDefaults() Settings {
	if s.LeftMarker == 0 {
		s.LeftMarker = DefaultLeftMarker
	}
	if s.RightMarker == 0 {
		s.RightMarker = DefaultRightMarker
	}
	if s.MarkerCount <= 0 {
		s.MarkerCount = DefaultMarkerCount
	}
	if s.IndentSpaces == nil || *s.IndentSpaces < 0 {
		s = s.WithIndent(DefaultIndentSpaces)
	}
	if s.LeftColor == 0 {
		s.LeftColor = DefaultLeftColor
	}
	if s.RightColor == 0 {
		s.RightColor = DefaultRightColor
	}
	return s
}

// WithNames returns a copy of s with both display names set.
func (s Settings) WithNames(left, right string) Settings {
	s.LeftName = &left
	s.RightName = &right
	return s
}

// WithMaxLineNumber returns a copy of s with a fixed line number width
// derived from n.
func (s Settings) WithMaxLineNumber(n int) Settings {
	s.MaxLineNumber = &n
	return s
}

// numberWidth returns the fixed column width, or 0 when unset.
func (s *Settings) numberWidth() int {
	if s.MaxLineNumber == nil {
		return 0
	}
	width := 1
	for n := *s.MaxLineNumber; n >= 10; n /= 10 {
		width++
	}
	return width
}

var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"purple":  color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ParseColor converts a color name such as "red" or "bright_blue" into a
// foreground attribute.
func ParseColor(name string) (color.Attribute, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)

	bright := false
	if rest, ok := strings.CutPrefix(normalized, "bright "); ok {
		bright = true
		normalized = strings.TrimSpace(rest)
	}

	attr, ok := colorNames[normalized]
	if !ok {
		return 0, fmt.Errorf("unknown color %q", name)
	}
	if bright {
		// FgHi* attributes are offset by 60 from their base colors.
		attr += color.FgHiBlack - color.FgBlack
	}
	return attr, nil
}
