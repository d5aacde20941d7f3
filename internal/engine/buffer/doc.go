// Package buffer provides the immutable text snapshot the formatting
// engine operates on. A Buffer pairs a UTF-8 string with a selection
// expressed in UTF-16 code units, matching the offset model of the
// editor surfaces that call into the engine.
//
// The buffer package provides:
//
//   - Buffer: an immutable (text, selection) value
//   - Selection: a pair of UTF-16 code-unit offsets
//   - Centralized offset clamping shared by every mutator
//   - Conversion between UTF-16 offsets and byte offsets
//   - Line boundary lookup around a byte offset
//
// Buffers are plain values. Every engine operation takes a Buffer and
// returns a new one; nothing is retained across calls.
//
// Position Types:
//
// Offset is a UTF-16 code-unit position, the unit the caller's selection
// is measured in. Byte offsets appear only internally and in the
// conversion helpers; all marker arithmetic happens in the byte domain
// and is translated back at the API boundary.
package buffer
