package format

import (
	"strconv"
	"strings"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

// HandleNewline performs list and quote continuation for an Enter
// keypress. It must run before the caller inserts its own newline;
// handled == true means the edit has already been performed and the
// default newline must be suppressed.
//
// On a line holding a non-empty bullet, numbered, or quote item, a
// newline plus the continuation prefix is inserted at the cursor
// (numbered items continue with the current line's number plus one). On a
// line holding only the marker, the whole line is deleted instead, ending
// the list. Non-collapsed selections and lines with no list pattern are
// left untouched with handled == false.
func (e *Engine) HandleNewline(b buffer.Buffer) (buffer.Buffer, bool) {
	b = b.Clamp()
	if !b.Sel.IsEmpty() {
		return b, false
	}

	caret := b.ByteOffset(b.Sel.Start)
	lineStart, lineEnd := b.LineBoundsAt(caret)
	line := b.Text[lineStart:lineEnd]

	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return e.continueLine(b, caret, lineStart, lineEnd, m[1]+m[2]+" ", m[3]), true
	}

	if m := numberedPattern.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return b, false
		}
		next := m[1] + strconv.Itoa(n+1) + ". "
		return e.continueLine(b, caret, lineStart, lineEnd, next, m[3]), true
	}

	if m := quotePattern.FindStringSubmatch(line); m != nil {
		return e.continueLine(b, caret, lineStart, lineEnd, PrefixQuote, m[1]), true
	}

	return b, false
}

// HandleNewline applies the default engine.
func HandleNewline(b buffer.Buffer) (buffer.Buffer, bool) {
	return defaultEngine.HandleNewline(b)
}

// continueLine either continues a list/quote item with the given prefix
// or, when the item is empty, terminates the list by deleting the line.
func (e *Engine) continueLine(b buffer.Buffer, caret, lineStart, lineEnd int, prefix, rest string) buffer.Buffer {
	text := b.Text

	if strings.TrimSpace(rest) == "" {
		// Enter on an empty item ends the list: remove the whole line
		// (including its newline when one follows) and collapse the
		// cursor at the former line start.
		cut := lineEnd
		if cut < len(text) {
			cut++
		}
		newText := text[:lineStart] + text[cut:]
		return buffer.New(newText, buffer.Cursor(b.OffsetAt(lineStart)))
	}

	ins := "\n" + prefix
	newText := text[:caret] + ins + text[caret:]
	return buffer.New(newText, buffer.Cursor(b.Sel.Start+buffer.Offset(len(ins))))
}
