// Package diff computes line alignments between two texts and renders them
// as a dual-numbered, optionally colorized report.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineKind classifies a single aligned line.
type LineKind int

// Line kinds.
const (
	LeftOnly LineKind = iota
	Both
	RightOnly
)

// String returns the kind name used in debug output.
func (k LineKind) String() string {
	switch k {
	case LeftOnly:
		return "left"
	case Both:
		return "both"
	case RightOnly:
		return "right"
	default:
		return "unknown"
	}
}

// Line is one entry of an Alignment. Left is set for LeftOnly and Both,
// Right is set for RightOnly and Both.
type Line struct {
	Kind  LineKind
	Left  string
	Right string
}

// Alignment is an ordered line-level diff of two sequences.
type Alignment []Line

// IsIdentical reports whether the alignment has no LeftOnly or RightOnly
// entries.
func (a Alignment) IsIdentical() bool {
	for _, l := range a {
		if l.Kind != Both {
			return false
		}
	}
	return true
}

// LeftLines reconstructs the left input in order.
func (a Alignment) LeftLines() []string {
	lines := make([]string, 0, len(a))
	for _, l := range a {
		if l.Kind != RightOnly {
			lines = append(lines, l.Left)
		}
	}
	return lines
}

// RightLines reconstructs the right input in order.
func (a Alignment) RightLines() []string {
	lines := make([]string, 0, len(a))
	for _, l := range a {
		if l.Kind != LeftOnly {
			lines = append(lines, l.Right)
		}
	}
	return lines
}

// SplitLines splits text on "\n", dropping one trailing "\r" per line.
// A trailing newline does not produce an empty final line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// AlignText splits both texts into lines and aligns them.
func AlignText(left, right string) Alignment {
	return Align(SplitLines(left), SplitLines(right))
}

// maxLineRunes is the number of distinct lines that can be encoded as runes,
// excluding the surrogate range.
const maxLineRunes = 0x10FFFF - 0x800

// Align computes a line alignment where a longest common subsequence of
// lines is marked Both. The result is deterministic for identical input.
func Align(left, right []string) Alignment {
	a, b, ok := encodeLines(left, right)
	if !ok {
		return alignTrimmed(left, right)
	}

	dmp := diffmatchpatch.New()
	// Exact diff; a timeout would make results depend on machine speed.
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMainRunes(a, b, false)

	out := make(Alignment, 0, max(len(left), len(right)))
	i, j := 0, 0
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			for k := 0; k < n; k++ {
				out = append(out, Line{Kind: Both, Left: left[i], Right: right[j]})
				i++
				j++
			}
		case diffmatchpatch.DiffDelete:
			for k := 0; k < n; k++ {
				out = append(out, Line{Kind: LeftOnly, Left: left[i]})
				i++
			}
		case diffmatchpatch.DiffInsert:
			for k := 0; k < n; k++ {
				out = append(out, Line{Kind: RightOnly, Right: right[j]})
				j++
			}
		}
	}
	return out
}

// encodeLines maps every distinct line to a unique valid rune so the
// character diff operates on whole lines.
func encodeLines(left, right []string) ([]rune, []rune, bool) {
	index := make(map[string]rune)
	encode := func(lines []string) ([]rune, bool) {
		runes := make([]rune, len(lines))
		for i, l := range lines {
			r, seen := index[l]
			if !seen {
				if len(index) >= maxLineRunes {
					return nil, false
				}
				r = lineRune(len(index))
				index[l] = r
			}
			runes[i] = r
		}
		return runes, true
	}

	a, ok := encode(left)
	if !ok {
		return nil, nil, false
	}
	b, ok := encode(right)
	if !ok {
		return nil, nil, false
	}
	return a, b, true
}

// lineRune returns the n-th usable rune, skipping NUL and UTF-16 surrogates.
func lineRune(n int) rune {
	r := rune(n + 1)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}

// alignTrimmed pairs the common prefix and suffix and marks everything in
// between as changed. Used only when the inputs cannot be rune-encoded.
func alignTrimmed(left, right []string) Alignment {
	prefix := 0
	for prefix < len(left) && prefix < len(right) && left[prefix] == right[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(left)-prefix && suffix < len(right)-prefix &&
		left[len(left)-1-suffix] == right[len(right)-1-suffix] {
		suffix++
	}

	out := make(Alignment, 0, len(left)+len(right)-prefix-suffix)
	for k := 0; k < prefix; k++ {
		out = append(out, Line{Kind: Both, Left: left[k], Right: right[k]})
	}
	for _, l := range left[prefix : len(left)-suffix] {
		out = append(out, Line{Kind: LeftOnly, Left: l})
	}
	for _, r := range right[prefix : len(right)-suffix] {
		out = append(out, Line{Kind: RightOnly, Right: r})
	}
	for k := suffix; k > 0; k-- {
		out = append(out, Line{Kind: Both, Left: left[len(left)-k], Right: right[len(right)-k]})
	}
	return out
}
