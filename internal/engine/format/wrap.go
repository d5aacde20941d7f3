package format

import "github.com/dshills/markstorm/internal/engine/buffer"

// ToggleWrap wraps or unwraps the selection with the given marker.
//
// If the selection is already symmetrically wrapped, the markers are
// removed and the selection repositioned over the unwrapped text. If the
// selection is empty, a marker pair is inserted around a placeholder
// string which is left selected for overtype. Otherwise the selection is
// wrapped and kept covering the original text.
//
// Applying the same marker twice to a non-empty selection restores the
// original buffer.
func (e *Engine) ToggleWrap(b buffer.Buffer, m Marker) buffer.Buffer {
	return e.toggleWrap(b, m, e.placeholder(placeholderKey(m)))
}

// ToggleWrap applies the default engine.
func ToggleWrap(b buffer.Buffer, m Marker) buffer.Buffer {
	return defaultEngine.ToggleWrap(b, m)
}

func (e *Engine) toggleWrap(b buffer.Buffer, m Marker, placeholder string) buffer.Buffer {
	b = b.Clamp()
	mk := string(m)
	n := len(mk)
	text := b.Text
	start, end := b.ByteSel()

	switch {
	case wrappedWith(text, start, end, mk):
		// Unwrap: drop the marker on both sides, keep the selection over
		// the same text in its new position.
		newText := text[:start-n] + text[start:end] + text[end+n:]
		return buffer.New(newText, b.Sel.Shift(-buffer.Offset(n)))

	case b.Sel.IsEmpty():
		// Nothing selected: insert marker + placeholder + marker and
		// select the placeholder so the user can type over it.
		newText := text[:start] + mk + placeholder + mk + text[start:]
		phStart := b.Sel.Start + buffer.Offset(n)
		sel := buffer.Select(phStart, phStart+buffer.UTF16Length(placeholder))
		return buffer.New(newText, sel)

	default:
		// Wrap: markers on both sides, selection still covers the
		// original text shifted by the opening marker.
		newText := text[:start] + mk + text[start:end] + mk + text[end:]
		return buffer.New(newText, b.Sel.Shift(buffer.Offset(n)))
	}
}

// wrappedWith reports whether text[start:end] is symmetrically wrapped by
// mk. Single-character markers reject matches that are part of a longer
// run of the same character, so a lone * wrap is never mistaken for the
// inside of a ** wrap.
func wrappedWith(text string, start, end int, mk string) bool {
	n := len(mk)
	if start < n || end+n > len(text) {
		return false
	}
	if text[start-n:start] != mk || text[end:end+n] != mk {
		return false
	}
	if n == 1 {
		c := mk[0]
		if start >= 2 && text[start-2] == c {
			return false
		}
		if end+1 < len(text) && text[end+1] == c {
			return false
		}
	}
	return true
}
