package format

import (
	"strings"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

// TogglePrefix toggles a prefix on the line containing the selection
// start. If the line already carries exactly prefix, it is removed. If
// group is non-nil and the line carries another member of the group, that
// member is replaced by prefix in one step. Otherwise prefix is
// prepended. The resulting selection is always a collapsed cursor at the
// adjusted offset, never left of the line start.
func (e *Engine) TogglePrefix(b buffer.Buffer, prefix string, group []string) buffer.Buffer {
	b = b.Clamp()
	text := b.Text
	caret := b.ByteOffset(b.Sel.Start)
	lineStart, lineEnd := b.LineBoundsAt(caret)
	line := text[lineStart:lineEnd]
	lineStartOff := b.OffsetAt(lineStart)

	if strings.HasPrefix(line, prefix) {
		// Toggle off.
		newText := text[:lineStart] + text[lineStart+len(prefix):]
		cur := b.Sel.Start - buffer.Offset(len(prefix))
		if cur < lineStartOff {
			cur = lineStartOff
		}
		return buffer.New(newText, buffer.Cursor(cur))
	}

	for _, g := range group {
		if g == prefix || !strings.HasPrefix(line, g) {
			continue
		}
		// Swap the group member for the requested prefix in one step.
		newText := text[:lineStart] + prefix + text[lineStart+len(g):]
		cur := b.Sel.Start + buffer.Offset(len(prefix)-len(g))
		if cur < lineStartOff {
			cur = lineStartOff
		}
		return buffer.New(newText, buffer.Cursor(cur))
	}

	newText := text[:lineStart] + prefix + text[lineStart:]
	cur := b.Sel.Start + buffer.Offset(len(prefix))
	return buffer.New(newText, buffer.Cursor(cur))
}

// TogglePrefix applies the default engine.
func TogglePrefix(b buffer.Buffer, prefix string, group []string) buffer.Buffer {
	return defaultEngine.TogglePrefix(b, prefix, group)
}

// ToggleHeading toggles the heading prefix for the given level (1-3).
// Heading levels are mutually exclusive: applying H2 to an H1 line
// replaces the prefix rather than stacking it. Levels outside 1-3 are
// clamped.
func (e *Engine) ToggleHeading(b buffer.Buffer, level int) buffer.Buffer {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	prefix := strings.Repeat("#", level) + " "
	return e.TogglePrefix(b, prefix, HeadingPrefixes)
}

// ToggleBulletList toggles the "- " bullet prefix on the current line.
func (e *Engine) ToggleBulletList(b buffer.Buffer) buffer.Buffer {
	return e.TogglePrefix(b, PrefixBullet, nil)
}

// ToggleNumberedList toggles the "1. " numbered prefix on the current line.
func (e *Engine) ToggleNumberedList(b buffer.Buffer) buffer.Buffer {
	return e.TogglePrefix(b, PrefixNumbered, nil)
}

// ToggleBlockquote toggles the "> " blockquote prefix on the current line.
func (e *Engine) ToggleBlockquote(b buffer.Buffer) buffer.Buffer {
	return e.TogglePrefix(b, PrefixQuote, nil)
}
