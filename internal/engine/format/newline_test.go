package format

import (
	"testing"

	"github.com/dshills/markstorm/internal/engine/buffer"
)

func TestHandleNewlineBulletContinues(t *testing.T) {
	b := buffer.New("- item", buffer.Cursor(6))

	got, handled := HandleNewline(b)

	if !handled {
		t.Fatal("expected handled")
	}
	if got.Text != "- item\n- " {
		t.Errorf("expected %q, got %q", "- item\n- ", got.Text)
	}
	if got.Sel.Start != 9 {
		t.Errorf("expected cursor at 9, got %v", got.Sel)
	}
}

func TestHandleNewlineBulletKeepsIndentAndChar(t *testing.T) {
	b := buffer.New("  * item", buffer.Cursor(8))

	got, handled := HandleNewline(b)

	if !handled {
		t.Fatal("expected handled")
	}
	if got.Text != "  * item\n  * " {
		t.Errorf("expected %q, got %q", "  * item\n  * ", got.Text)
	}
}

func TestHandleNewlineNumberedIncrements(t *testing.T) {
	b := buffer.New("3. foo", buffer.Cursor(6))

	got, handled := HandleNewline(b)

	if !handled {
		t.Fatal("expected handled")
	}
	if got.Text != "3. foo\n4. " {
		t.Errorf("expected %q, got %q", "3. foo\n4. ", got.Text)
	}
	if got.Sel.Start != 10 {
		t.Errorf("expected cursor at 10, got %v", got.Sel)
	}
}

func TestHandleNewlineNumberedUsesCurrentLineNumber(t *testing.T) {
	// Continuation increments the current line's number, it does not
	// recount or renumber earlier items.
	b := buffer.New("1. a\n7. b", buffer.Cursor(9))

	got, handled := HandleNewline(b)

	if !handled {
		t.Fatal("expected handled")
	}
	if got.Text != "1. a\n7. b\n8. " {
		t.Errorf("expected %q, got %q", "1. a\n7. b\n8. ", got.Text)
	}
}

func TestHandleNewlineQuoteContinues(t *testing.T) {
	b := buffer.New("> hi", buffer.Cursor(4))

	got, handled := HandleNewline(b)

	if !handled {
		t.Fatal("expected handled")
	}
	if got.Text != "> hi\n> " {
		t.Errorf("expected %q, got %q", "> hi\n> ", got.Text)
	}
}

func TestHandleNewlineEmptyBulletTerminates(t *testing.T) {
	b := buffer.New("- ", buffer.Cursor(2))

	got, handled := HandleNewline(b)

	if !handled {
		t.Fatal("expected handled")
	}
	if got.Text != "" {
		t.Errorf("expected empty text, got %q", got.Text)
	}
	if got.Sel.Start != 0 || !got.Sel.IsEmpty() {
		t.Errorf("expected cursor at 0, got %v", got.Sel)
	}
}

func TestHandleNewlineEmptyItemDeletesWholeLine(t *testing.T) {
	b := buffer.New("a\n- \nb", buffer.Cursor(4))

	got, handled := HandleNewline(b)

	if !handled {
		t.Fatal("expected handled")
	}
	if got.Text != "a\nb" {
		t.Errorf("expected %q, got %q", "a\nb", got.Text)
	}
	if got.Sel.Start != 2 {
		t.Errorf("expected cursor at 2, got %v", got.Sel)
	}
}

func TestHandleNewlineEmptyNumberedTerminates(t *testing.T) {
	b := buffer.New("1. ", buffer.Cursor(3))

	got, handled := HandleNewline(b)

	if !handled {
		t.Fatal("expected handled")
	}
	if got.Text != "" {
		t.Errorf("expected empty text, got %q", got.Text)
	}
}

func TestHandleNewlineMidLineInsertsAtCursor(t *testing.T) {
	b := buffer.New("3. foo", buffer.Cursor(4))

	got, handled := HandleNewline(b)

	if !handled {
		t.Fatal("expected handled")
	}
	if got.Text != "3. f\n4. oo" {
		t.Errorf("expected %q, got %q", "3. f\n4. oo", got.Text)
	}
	if got.Sel.Start != 8 {
		t.Errorf("expected cursor at 8, got %v", got.Sel)
	}
}

func TestHandleNewlinePlainLineNotHandled(t *testing.T) {
	b := buffer.New("plain text", buffer.Cursor(5))

	got, handled := HandleNewline(b)

	if handled {
		t.Fatal("did not expect handled")
	}
	if !got.Equal(b) {
		t.Errorf("buffer mutated: %q %v", got.Text, got.Sel)
	}
}

func TestHandleNewlineRejectsNonCollapsedSelection(t *testing.T) {
	b := buffer.New("- item", buffer.Select(0, 3))

	got, handled := HandleNewline(b)

	if handled {
		t.Fatal("did not expect handled")
	}
	if !got.Equal(b) {
		t.Errorf("buffer mutated: %q %v", got.Text, got.Sel)
	}
}

func TestHandleNewlineUnicodeContent(t *testing.T) {
	b := buffer.New("- 日本語", buffer.Cursor(5))

	got, handled := HandleNewline(b)

	if !handled {
		t.Fatal("expected handled")
	}
	if got.Text != "- 日本語\n- " {
		t.Errorf("expected %q, got %q", "- 日本語\n- ", got.Text)
	}
	if got.Sel.Start != 8 {
		t.Errorf("expected cursor at 8, got %v", got.Sel)
	}
}
