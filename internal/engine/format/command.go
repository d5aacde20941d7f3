package format

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

// Command names for formatting operations.
const (
	CommandBold           = "bold"
	CommandItalic         = "italic"
	CommandCode           = "code"
	CommandHeading1       = "heading1"
	CommandHeading2       = "heading2"
	CommandHeading3       = "heading3"
	CommandBulletList     = "bullet"
	CommandNumberedList   = "numbered"
	CommandBlockquote     = "quote"
	CommandCodeBlock      = "codeblock"
	CommandLink           = "link"
	CommandHorizontalRule = "hr"
)

// Errors returned by command dispatch and registration.
var (
	ErrUnknownCommand  = errors.New("unknown format command")
	ErrCommandReserved = errors.New("command name is reserved")
	ErrCommandInvalid  = errors.New("invalid wrap command")
)

// builtinCommands is the fixed set of command names the engine dispatches.
var builtinCommands = []string{
	CommandBold, CommandItalic, CommandCode,
	CommandHeading1, CommandHeading2, CommandHeading3,
	CommandBulletList, CommandNumberedList, CommandBlockquote,
	CommandCodeBlock, CommandLink, CommandHorizontalRule,
}

// WrapCommand is a user-defined inline wrap, typically loaded from a
// script: a command name bound to a symmetric marker and the placeholder
// used when the selection is empty.
type WrapCommand struct {
	Name        string
	Marker      Marker
	Placeholder string
}

// RegisterWrap adds a custom wrap command to the engine. Built-in command
// names cannot be shadowed; the marker and name must be non-empty.
func (e *Engine) RegisterWrap(cmd WrapCommand) error {
	if cmd.Name == "" || cmd.Marker == "" {
		return fmt.Errorf("%w: name and marker are required", ErrCommandInvalid)
	}
	for _, name := range builtinCommands {
		if cmd.Name == name {
			return fmt.Errorf("%w: %q", ErrCommandReserved, cmd.Name)
		}
	}
	e.custom[cmd.Name] = cmd
	return nil
}

// Commands returns every dispatchable command name, sorted, built-ins
// first.
func (e *Engine) Commands() []string {
	names := make([]string, 0, len(builtinCommands)+len(e.custom))
	names = append(names, builtinCommands...)
	sort.Strings(names[:len(builtinCommands)])

	extra := make([]string, 0, len(e.custom))
	for name := range e.custom {
		extra = append(extra, name)
	}
	sort.Strings(extra)

	return append(names, extra...)
}

// Apply dispatches a named formatting command against the buffer.
func (e *Engine) Apply(b buffer.Buffer, name string) (buffer.Buffer, error) {
	switch name {
	case CommandBold:
		return e.ToggleWrap(b, MarkerBold), nil
	case CommandItalic:
		return e.ToggleWrap(b, MarkerItalic), nil
	case CommandCode:
		return e.ToggleWrap(b, MarkerCode), nil
	case CommandHeading1:
		return e.ToggleHeading(b, 1), nil
	case CommandHeading2:
		return e.ToggleHeading(b, 2), nil
	case CommandHeading3:
		return e.ToggleHeading(b, 3), nil
	case CommandBulletList:
		return e.ToggleBulletList(b), nil
	case CommandNumberedList:
		return e.ToggleNumberedList(b), nil
	case CommandBlockquote:
		return e.ToggleBlockquote(b), nil
	case CommandCodeBlock:
		return e.InsertCodeBlock(b), nil
	case CommandLink:
		return e.InsertLink(b), nil
	case CommandHorizontalRule:
		return e.InsertHorizontalRule(b), nil
	}

	if cmd, ok := e.custom[name]; ok {
		placeholder := cmd.Placeholder
		if placeholder == "" {
			placeholder = cmd.Name
		}
		return e.toggleWrap(b, cmd.Marker, placeholder), nil
	}

	return b, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}
