package locale

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lang.toml")

	write := func(value string) {
		t.Helper()
		content := "[placeholders]\nbold = \"" + value + "\"\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	write("first")

	c := NewCatalog()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	w, err := WatchFile(c, path)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	defer w.Close()

	write("second")

	select {
	case err := <-w.Reloads():
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if got := c.Placeholder("bold"); got != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lang.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	w, err := WatchFile(NewCatalog(), path)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first close failed: %v", err)
	}
	if err := w.Close(); err != ErrWatcherClosed {
		t.Errorf("expected ErrWatcherClosed, got %v", err)
	}
}
