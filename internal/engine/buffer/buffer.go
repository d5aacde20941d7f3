package buffer

import "strings"

// Buffer is an immutable snapshot of editor text plus the current
// selection. The selection is measured in UTF-16 code units; the text is
// an ordinary Go (UTF-8) string. Buffers are values: operations build a
// new Buffer rather than mutating in place.
type Buffer struct {
	Text string
	Sel  Selection
}

// New creates a buffer with the given text and selection.
// The selection is clamped into [0, Len] and normalized so Start <= End.
func New(text string, sel Selection) Buffer {
	return Buffer{Text: text, Sel: sel}.Clamp()
}

// FromString creates a buffer with the cursor collapsed at offset 0.
func FromString(text string) Buffer {
	return Buffer{Text: text, Sel: Cursor(0)}
}

// Len returns the text length in UTF-16 code units.
func (b Buffer) Len() Offset {
	return UTF16Length(b.Text)
}

// Equal reports whether two buffers have identical text and selection.
func (b Buffer) Equal(other Buffer) bool {
	return b.Text == other.Text && b.Sel == other.Sel
}

// Clamp returns a buffer whose selection is forced into [0, Len] with
// Start <= End. Every mutator routes its result through here so a caller
// can never receive an out-of-range selection.
func (b Buffer) Clamp() Buffer {
	n := b.Len()
	start := clampOffset(b.Sel.Start, n)
	end := clampOffset(b.Sel.End, n)
	if start > end {
		start, end = end, start
	}
	b.Sel = Selection{Start: start, End: end}
	return b
}

// ByteOffset converts a UTF-16 code-unit offset into a byte offset into
// Text. Offsets past the end of the text map to len(Text); offsets that
// would land inside a rune round down to the rune start.
func (b Buffer) ByteOffset(offset Offset) int {
	return byteIndex(b.Text, offset)
}

// OffsetAt converts a byte offset into Text to a UTF-16 code-unit offset.
func (b Buffer) OffsetAt(byteOffset int) Offset {
	if byteOffset < 0 {
		return 0
	}
	if byteOffset > len(b.Text) {
		byteOffset = len(b.Text)
	}
	return UTF16Length(b.Text[:byteOffset])
}

// ByteSel returns the selection as byte offsets into Text.
func (b Buffer) ByteSel() (start, end int) {
	return b.ByteOffset(b.Sel.Start), b.ByteOffset(b.Sel.End)
}

// LineBoundsAt returns the byte range [start, end) of the line containing
// the given byte offset. A line is the maximal run of bytes between the
// previous newline (exclusive) and the next newline (exclusive).
func (b Buffer) LineBoundsAt(byteOffset int) (start, end int) {
	if byteOffset < 0 {
		byteOffset = 0
	}
	if byteOffset > len(b.Text) {
		byteOffset = len(b.Text)
	}
	start = strings.LastIndexByte(b.Text[:byteOffset], '\n') + 1
	rel := strings.IndexByte(b.Text[byteOffset:], '\n')
	if rel < 0 {
		end = len(b.Text)
	} else {
		end = byteOffset + rel
	}
	return start, end
}

// LineAt returns the text of the line containing the given byte offset,
// without its newline.
func (b Buffer) LineAt(byteOffset int) string {
	start, end := b.LineBoundsAt(byteOffset)
	return b.Text[start:end]
}

// clampOffset forces an offset into [0, max].
func clampOffset(offset, max Offset) Offset {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
