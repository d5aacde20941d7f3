package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/format"
)

func TestLoadStringReadsCommands(t *testing.T) {
	cmds, err := LoadString(`
commands = {
    { name = "strike", marker = "~~", placeholder = "strikethrough" },
    { name = "mark", marker = "==" },
}
`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	if cmds[0].Name != "strike" || cmds[0].Marker != "~~" || cmds[0].Placeholder != "strikethrough" {
		t.Errorf("unexpected first command: %+v", cmds[0])
	}
	if cmds[1].Name != "mark" || cmds[1].Marker != "==" || cmds[1].Placeholder != "" {
		t.Errorf("unexpected second command: %+v", cmds[1])
	}
}

func TestLoadStringNoCommandsTable(t *testing.T) {
	_, err := LoadString(`x = 1`)
	if !errors.Is(err, ErrNoCommands) {
		t.Errorf("expected ErrNoCommands, got %v", err)
	}
}

func TestLoadStringMalformedEntry(t *testing.T) {
	_, err := LoadString(`commands = { { marker = "~~" } }`)
	if !errors.Is(err, ErrBadCommand) {
		t.Errorf("expected ErrBadCommand, got %v", err)
	}
}

func TestLoadStringSyntaxError(t *testing.T) {
	_, err := LoadString(`commands = {`)
	if !errors.Is(err, ErrScriptError) {
		t.Errorf("expected ErrScriptError, got %v", err)
	}
}

func TestLoadStringComputedMarkers(t *testing.T) {
	// Scripts can build the table programmatically.
	cmds, err := LoadString(`
commands = {}
for i, m in ipairs({"~~", "=="}) do
    commands[i] = { name = "cmd" .. i, marker = m }
end
`)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	if cmds[0].Name != "cmd1" || cmds[1].Marker != "==" {
		t.Errorf("unexpected commands: %+v", cmds)
	}
}

func TestRegisterWiresCommandsIntoEngine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commands.lua")

	source := `commands = { { name = "strike", marker = "~~" } }`
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	e := format.New()
	if err := Register(e, path); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	b := buffer.New("gone", buffer.Select(0, 4))
	got, err := e.Apply(b, "strike")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got.Text != "~~gone~~" {
		t.Errorf("expected %q, got %q", "~~gone~~", got.Text)
	}
}

func TestRegisterRejectsReservedName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commands.lua")

	source := `commands = { { name = "bold", marker = "~~" } }`
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	err := Register(format.New(), path)
	if !errors.Is(err, format.ErrCommandReserved) {
		t.Errorf("expected ErrCommandReserved, got %v", err)
	}
}

func TestScriptCannotReachOS(t *testing.T) {
	_, err := LoadString(`commands = { { name = os.getenv("HOME"), marker = "~~" } }`)
	if err == nil {
		t.Error("expected error: os library must not be available")
	}
}
