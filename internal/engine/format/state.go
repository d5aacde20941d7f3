package format

import (
	"regexp"
	"strings"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

// State describes which formatting constructs are active at the current
// selection. It is recomputed on demand and never stored.
type State struct {
	Bold      bool `json:"bold"`
	Italic    bool `json:"italic"`
	Code      bool `json:"code"`
	CodeBlock bool `json:"codeBlock"` // inside an open fenced code block
	Bullet    bool `json:"bullet"`
	Numbered  bool `json:"numbered"`
	Quote     bool `json:"quote"`
	Heading   int  `json:"heading"` // 0 when the line is not a heading
}

// Line patterns for list, quote and heading detection. Lines never
// contain a newline, so these anchor against the whole line.
var (
	bulletPattern   = regexp.MustCompile(`^(\s*)([-*+]) (.*)$`)
	numberedPattern = regexp.MustCompile(`^(\s*)(\d+)\. (.*)$`)
	quotePattern    = regexp.MustCompile(`^> ?(.*)$`)
	headingPattern  = regexp.MustCompile(`^(#{1,6}) `)
)

// Detect computes the format state at the buffer's current selection.
//
// Inline markers are checked symmetrically at the selection boundaries,
// which works for a collapsed cursor sitting exactly between a marker
// pair as well as for a selection covering the wrapped text. A collapsed
// cursor anywhere inside wrapped text additionally matches via an
// enclosing-pair scan of the current line, so the marker stays reported
// while the user types within it. The fenced code block check is a
// parity scan over every line strictly before the cursor's line: an odd
// number of fence lines means the cursor is inside an open fence.
func (e *Engine) Detect(b buffer.Buffer) State {
	b = b.Clamp()
	text := b.Text
	start, end := b.ByteSel()

	lineStart, lineEnd := b.LineBoundsAt(b.ByteOffset(b.Sel.Start))
	line := text[lineStart:lineEnd]

	st := State{
		Bold:      markerActive(text, line, lineStart, start, end, string(MarkerBold)),
		Italic:    markerActive(text, line, lineStart, start, end, string(MarkerItalic)),
		Code:      markerActive(text, line, lineStart, start, end, string(MarkerCode)),
		CodeBlock: insideFence(text, lineStart),
		Bullet:    bulletPattern.MatchString(line),
		Numbered:  numberedPattern.MatchString(line),
		Quote:     quotePattern.MatchString(line),
	}

	if m := headingPattern.FindStringSubmatch(line); m != nil {
		st.Heading = len(m[1])
	}

	return st
}

// Detect applies the default engine.
func Detect(b buffer.Buffer) State {
	return defaultEngine.Detect(b)
}

// markerActive reports whether the marker is active at the selection:
// either the selection is symmetrically wrapped by it, or the selection
// is a collapsed cursor sitting inside a marker pair on the current line.
func markerActive(text, line string, lineStart, start, end int, mk string) bool {
	if wrappedWith(text, start, end, mk) {
		return true
	}
	if start != end {
		return false
	}
	return enclosedBy(line, start-lineStart, mk)
}

// enclosedBy reports whether position pos (a byte offset into line) lies
// inside a marker pair. Marker occurrences are paired left to right;
// single-character occurrences that are part of a longer run of the same
// character do not count, keeping a ** pair from reading as two * pairs.
func enclosedBy(line string, pos int, mk string) bool {
	n := len(mk)
	open := -1

	for i := 0; i+n <= len(line); {
		if line[i:i+n] != mk || partOfRun(line, i, n) {
			i++
			continue
		}
		if open < 0 {
			open = i + n
		} else {
			if open <= pos && pos <= i {
				return true
			}
			open = -1
		}
		i += n
	}

	return false
}

// partOfRun reports whether a single-character marker occurrence at i is
// adjacent to the same character and so belongs to a longer marker.
func partOfRun(line string, i, n int) bool {
	if n != 1 {
		return false
	}
	c := line[i]
	if i > 0 && line[i-1] == c {
		return true
	}
	if i+1 < len(line) && line[i+1] == c {
		return true
	}
	return false
}

// insideFence reports whether the line starting at lineStart is inside an
// open fenced code block. Each earlier line whose trimmed text starts
// with the fence token flips the state; no bracket matching is done.
func insideFence(text string, lineStart int) bool {
	inside := false
	for _, line := range strings.Split(text[:lineStart], "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), Fence) {
			inside = !inside
		}
	}
	return inside
}
