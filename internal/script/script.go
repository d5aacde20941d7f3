package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/markstorm/internal/engine/format"
)

// Errors returned by script loading.
var (
	ErrNoCommands  = errors.New("script declares no commands table")
	ErrBadCommand  = errors.New("malformed command entry")
	ErrScriptError = errors.New("script execution failed")
)

// LoadFile evaluates a Lua command script from a file and returns the
// wrap commands it declares.
func LoadFile(path string) ([]format.WrapCommand, error) {
	L := newState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScriptError, err)
	}

	return readCommands(L)
}

// LoadString evaluates a Lua command script from source text.
func LoadString(source string) ([]format.WrapCommand, error) {
	L := newState()
	defer L.Close()

	if err := L.DoString(source); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScriptError, err)
	}

	return readCommands(L)
}

// Register loads a script file and registers every command it declares
// on the engine.
func Register(e *format.Engine, path string) error {
	cmds, err := LoadFile(path)
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		if err := e.RegisterWrap(cmd); err != nil {
			return fmt.Errorf("registering %q: %w", cmd.Name, err)
		}
	}
	return nil
}

// newState creates a Lua state with only safe standard libraries.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	// A command script only needs to build tables of strings.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug, and package stay closed so a script cannot touch
	// the file system, spawn processes, or escape the restricted state.

	return L
}

// readCommands extracts the global commands table from the state.
func readCommands(L *lua.LState) ([]format.WrapCommand, error) {
	tbl, ok := L.GetGlobal("commands").(*lua.LTable)
	if !ok {
		return nil, ErrNoCommands
	}

	var cmds []format.WrapCommand
	var readErr error

	tbl.ForEach(func(_, value lua.LValue) {
		if readErr != nil {
			return
		}

		entry, ok := value.(*lua.LTable)
		if !ok {
			readErr = fmt.Errorf("%w: entry is not a table", ErrBadCommand)
			return
		}

		name := stringField(entry, "name")
		marker := stringField(entry, "marker")
		if name == "" || marker == "" {
			readErr = fmt.Errorf("%w: name and marker are required", ErrBadCommand)
			return
		}

		cmds = append(cmds, format.WrapCommand{
			Name:        name,
			Marker:      format.Marker(marker),
			Placeholder: stringField(entry, "placeholder"),
		})
	})

	if readErr != nil {
		return nil, readErr
	}
	return cmds, nil
}

// stringField reads a string field from a Lua table, "" when absent or
// not a string.
func stringField(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}
