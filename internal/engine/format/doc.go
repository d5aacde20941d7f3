// Package format implements Markdown formatting over immutable buffer
// snapshots: applying, detecting, and toggling inline markers, line
// prefixes, and block constructs, plus smart newline handling for list
// and quote continuation.
//
// The format package provides:
//
//   - ToggleWrap: wrap/unwrap a selection in **bold**, *italic*, `code`
//   - TogglePrefix: toggle line prefixes (headings, lists, blockquote)
//     with exclusive-group replacement for heading levels
//   - Detect: compute the State active at the current selection
//   - InsertCodeBlock, InsertLink, InsertHorizontalRule block helpers
//   - HandleNewline: list/quote auto-continuation and auto-termination
//   - Apply: named-command dispatch, extensible with custom wrap markers
//
// Every operation is a pure function from one buffer.Buffer to the next;
// nothing is retained across calls and no operation errors on boundary
// input. Resulting selections are always clamped into the new text.
//
// An Engine carries the placeholder provider used when formatting an
// empty selection. The zero configuration (format.New()) uses built-in
// English placeholders; callers wanting localized placeholder strings
// supply a provider such as *locale.Catalog.
package format
