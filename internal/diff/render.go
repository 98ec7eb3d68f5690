package diff

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

type side int

const (
	sideLeft side = iota
	sideRight
)

// Renderer formats alignments using fixed settings and a resolved color
// decision.
type Renderer struct {
	settings *Settings
	color    bool
}

// NewRenderer resolves policy against the destination writer once and
// returns a renderer for it.
func NewRenderer(settings *Settings, policy ColorPolicy, w io.Writer) *Renderer {
	return &Renderer{settings: settings, color: policy.Enabled(w)}
}

// Render returns the report text for a. Identical alignments render as the
// empty string, with no header. Unset settings fall back to the defaults.
func (r *Renderer) Render(a Alignment) string {
	if a.IsIdentical() {
		return ""
	}

	var s Settings
	if r.settings != nil {
		s = *r.settings
	}
	s = s.withDefaults()
	left := r.paint(color.New(s.LeftColor))
	right := r.paint(color.New(s.RightColor))
	dim := r.paint(color.New(color.Faint))

	var b strings.Builder
	b.WriteString(left(header(sideLeft, s.LeftName, s.LeftMarker, s.MarkerCount)))
	b.WriteByte('\n')
	b.WriteString(right(header(sideRight, s.RightName, s.RightMarker, s.MarkerCount)))
	b.WriteByte('\n')

	indent := strings.Repeat(" ", *s.IndentSpaces)
	width := s.numberWidth()

	leftNum, rightNum := 0, 0
	for _, l := range a {
		var (
			sep, content string
			ln, rn       int
			paint        func(string) string
		)
		switch l.Kind {
		case LeftOnly:
			leftNum++
			sep, content, ln, paint = "-", l.Left, leftNum, left
		case RightOnly:
			rightNum++
			sep, content, rn, paint = "+", l.Right, rightNum, right
		default:
			leftNum++
			rightNum++
			sep, content, ln, rn, paint = "|", l.Left, leftNum, rightNum, dim
		}

		line := fmt.Sprintf("%s%s%s%s %s %s",
			indent, numberField(ln, width), indent, numberField(rn, width), sep, content)
		b.WriteString(paint(line))
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) paint(c *color.Color) func(string) string {
	if r.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return func(s string) string { return c.Sprint(s) }
}

// header builds "<bar> left" or "<bar> left:  <name>". "right" is one
// character longer than "left", so the left name gets an extra space.
func header(sd side, name *string, marker rune, count int) string {
	bar := strings.Repeat(string(marker), max(count, 0))
	label := "left"
	pad := " "
	if sd == sideRight {
		label = "right"
		pad = ""
	}
	if name == nil {
		return bar + " " + label
	}
	return bar + " " + label + ":" + pad + " " + *name
}

// numberField renders a 1-based line number, or blanks when n is 0.
// A zero width means no fixed column.
func numberField(n, width int) string {
	if width == 0 {
		if n == 0 {
			return " "
		}
		return strconv.Itoa(n)
	}
	if n == 0 {
		return strings.Repeat(" ", width)
	}
	return fmt.Sprintf("%*d", width, n)
}

// Report aligns two texts and renders them with s. The color policy is
// resolved against w.
func Report(left, right string, s *Settings, w io.Writer) (Alignment, string, error) {
	policy, err := s.ColorPolicy()
	if err != nil {
		return nil, "", err
	}
	a := AlignText(left, right)
	return a, NewRenderer(s, policy, w).Render(a), nil
}
