package format

import "github.com/dshills/markstorm/internal/engine/buffer"

// InsertCodeBlock wraps the selection in a fenced code block, or inserts
// an empty fence pair when nothing is selected. The cursor lands on the
// line following the opening fence.
func (e *Engine) InsertCodeBlock(b buffer.Buffer) buffer.Buffer {
	b = b.Clamp()
	text := b.Text
	start, end := b.ByteSel()

	// Cursor lands right after the opening fence's newline.
	cur := b.Sel.Start + buffer.Offset(len(Fence)+1)

	if b.Sel.IsEmpty() {
		newText := text[:start] + Fence + "\n\n" + Fence + text[start:]
		return buffer.New(newText, buffer.Cursor(cur))
	}

	newText := text[:start] + Fence + "\n" + text[start:end] + "\n" + Fence + text[end:]
	return buffer.New(newText, buffer.Cursor(cur))
}

// InsertCodeBlock applies the default engine.
func InsertCodeBlock(b buffer.Buffer) buffer.Buffer {
	return defaultEngine.InsertCodeBlock(b)
}

// InsertLink turns the selection into a Markdown link with a placeholder
// URL left selected for overtype. With no selection, a fully placeholder
// link is inserted with its link-text portion selected.
func (e *Engine) InsertLink(b buffer.Buffer) buffer.Buffer {
	b = b.Clamp()
	text := b.Text
	start, end := b.ByteSel()
	urlPH := e.placeholder(KeyLinkURL)

	if b.Sel.IsEmpty() {
		textPH := e.placeholder(KeyLinkText)
		newText := text[:start] + "[" + textPH + "](" + urlPH + ")" + text[start:]
		phStart := b.Sel.Start + 1
		sel := buffer.Select(phStart, phStart+buffer.UTF16Length(textPH))
		return buffer.New(newText, sel)
	}

	newText := text[:start] + "[" + text[start:end] + "](" + urlPH + ")" + text[end:]
	urlStart := b.Sel.End + 3 // past "[", the selection, and "]("
	sel := buffer.Select(urlStart, urlStart+buffer.UTF16Length(urlPH))
	return buffer.New(newText, sel)
}

// InsertLink applies the default engine.
func InsertLink(b buffer.Buffer) buffer.Buffer {
	return defaultEngine.InsertLink(b)
}

// horizontalRule is always placed on its own line, padded by blank lines.
const horizontalRule = "\n\n---\n\n"

// InsertHorizontalRule inserts a rule on a new line immediately after the
// current line, never in the middle of inline content. The cursor lands
// on the blank line following the rule.
func (e *Engine) InsertHorizontalRule(b buffer.Buffer) buffer.Buffer {
	b = b.Clamp()
	text := b.Text
	_, lineEnd := b.LineBoundsAt(b.ByteOffset(b.Sel.Start))

	newText := text[:lineEnd] + horizontalRule + text[lineEnd:]
	cur := b.OffsetAt(lineEnd) + buffer.Offset(len(horizontalRule)-1)
	return buffer.New(newText, buffer.Cursor(cur))
}

// InsertHorizontalRule applies the default engine.
func InsertHorizontalRule(b buffer.Buffer) buffer.Buffer {
	return defaultEngine.InsertHorizontalRule(b)
}
