package buffer

// UTF16Length counts UTF-16 code units in a string.
func UTF16Length(s string) Offset {
	var n Offset
	for _, r := range s {
		if r >= 0x10000 {
			n += 2 // Surrogate pair (characters outside BMP)
		} else {
			n++
		}
	}
	return n
}

// byteIndex converts a UTF-16 code-unit offset to a byte offset into s.
// An offset landing inside a surrogate pair rounds down to the rune start.
func byteIndex(s string, offset Offset) int {
	if offset <= 0 {
		return 0
	}

	var units Offset
	for i, r := range s {
		width := Offset(1)
		if r >= 0x10000 {
			width = 2 // Surrogate pair
		}

		// An offset landing inside this rune's code units snaps to the
		// rune start.
		if units+width > offset {
			return i
		}
		units += width
	}

	return len(s)
}
