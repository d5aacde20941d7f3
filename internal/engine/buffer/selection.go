package buffer

import "fmt"

// Offset represents a position in the buffer measured in UTF-16 code units.
// This is the unit the caller's selection is expressed in.
type Offset = int

// Selection represents a range of selected text in UTF-16 code units.
// Start and End are normalized so that Start <= End after clamping.
// When Start == End, this represents a cursor with no extent.
// Selection is an immutable value type.
type Selection struct {
	Start Offset
	End   Offset
}

// Cursor creates a collapsed selection at the given offset.
func Cursor(offset Offset) Selection {
	return Selection{Start: offset, End: offset}
}

// Select creates a selection covering [start, end).
func Select(start, end Offset) Selection {
	return Selection{Start: start, End: end}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the length of the selection in UTF-16 code units.
func (s Selection) Len() Offset {
	return s.End - s.Start
}

// Shift returns a new selection with both offsets moved by delta.
func (s Selection) Shift(delta Offset) Selection {
	return Selection{Start: s.Start + delta, End: s.End + delta}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
