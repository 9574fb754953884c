package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/loupe/internal/render/backend"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func newApp(t *testing.T, content string, width, height int) (*Application, *backend.NullBackend) {
	t.Helper()
	b := backend.NewNullBackend(width, height)
	return New(Options{Path: writeFile(t, content), Logger: NullLogger}, b), b
}

func TestRunQuit(t *testing.T) {
	app, b := newApp(t, "abc\nde\nf", 40, 10)
	b.QueueRunes("q")

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if !b.Finished() {
		t.Error("terminal not restored after quit")
	}
}

func TestRunMissingFile(t *testing.T) {
	b := backend.NewNullBackend(40, 10)
	app := New(Options{Path: filepath.Join(t.TempDir(), "missing"), Logger: NullLogger}, b)

	err := app.Run()
	if err == nil || errors.Is(err, ErrQuit) {
		t.Fatalf("expected load error, got %v", err)
	}
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "open" {
		t.Errorf("expected open OperationError, got %v", err)
	}
	if !b.Finished() {
		t.Error("terminal not restored after load failure")
	}
}

func TestRunMovementAndDelete(t *testing.T) {
	app, b := newApp(t, "abc\nde\nf", 40, 10)
	b.QueueRunes("kdq") // down, delete line, quit

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}

	buf := app.Buffer()
	if buf.Lines() != 2 {
		t.Fatalf("expected 2 lines after delete, got %d", buf.Lines())
	}
	if buf.LineText(0) != "abc" || buf.LineText(1) != "f" {
		t.Errorf("unexpected lines: %q, %q", buf.LineText(0), buf.LineText(1))
	}
	if buf.Position().Line != 1 {
		t.Errorf("expected point on line 1, got %d", buf.Position().Line)
	}
}

func TestRunArrowAliases(t *testing.T) {
	app, b := newApp(t, "abc\nde\nf", 40, 10)
	b.QueueEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyDown})
	b.QueueEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRight})
	b.QueueRunes("q")

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if got := app.Buffer().Point(); got != 5 {
		t.Errorf("expected point 5, got %d", got)
	}
}

func TestRunResize(t *testing.T) {
	app, b := newApp(t, "abc\nde\nf", 40, 10)
	b.QueueEvent(backend.Event{Type: backend.EventResize, Width: 40, Height: 5})
	b.QueueRunes("q")

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if got := app.Buffer().View().Height(); got != 4 {
		t.Errorf("expected viewport height 4 after resize, got %d", got)
	}
}

func TestRunStopsOnDrainedEvents(t *testing.T) {
	app, _ := newApp(t, "abc", 40, 10)
	if err := app.Run(); err != nil {
		t.Fatalf("expected clean return when event source ends, got %v", err)
	}
}

func TestRunRendersEachEvent(t *testing.T) {
	app, b := newApp(t, "abc\nde\nf", 40, 10)
	b.QueueRunes("kkq")

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	// Initial render plus one per movement key.
	if got := b.Shows(); got != 3 {
		t.Errorf("expected 3 renders, got %d", got)
	}
}

func TestKeymap(t *testing.T) {
	key := func(k backend.Key) backend.Event {
		return backend.Event{Type: backend.EventKey, Key: k}
	}
	char := func(r rune) backend.Event {
		return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
	}

	tests := []struct {
		name string
		ev   backend.Event
		want Action
	}{
		{"right arrow", key(backend.KeyRight), ActionMoveRight},
		{"left arrow", key(backend.KeyLeft), ActionMoveLeft},
		{"down arrow", key(backend.KeyDown), ActionMoveDown},
		{"up arrow", key(backend.KeyUp), ActionMoveUp},
		{"end", key(backend.KeyEnd), ActionMoveEndOfLine},
		{"home", key(backend.KeyHome), ActionMoveStartOfLine},
		{"page down", key(backend.KeyPageDown), ActionPageDown},
		{"page up", key(backend.KeyPageUp), ActionPageUp},
		{"ctrl-c", key(backend.KeyCtrlC), ActionQuit},
		{"letter right", char('l'), ActionMoveRight},
		{"letter left", char('j'), ActionMoveLeft},
		{"letter down", char('k'), ActionMoveDown},
		{"letter up", char('i'), ActionMoveUp},
		{"letter end of line", char('L'), ActionMoveEndOfLine},
		{"letter start of line", char('J'), ActionMoveStartOfLine},
		{"letter page down", char('K'), ActionPageDown},
		{"letter page up", char('I'), ActionPageUp},
		{"document end", char('>'), ActionMoveEnd},
		{"document start", char('<'), ActionMoveStart},
		{"delete line", char('d'), ActionDeleteLine},
		{"quit", char('q'), ActionQuit},
		{"unbound letter", char('z'), ActionNone},
		{"unbound key", key(backend.KeyEscape), ActionNone},
		{"non-key event", backend.Event{Type: backend.EventResize}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bindingFor(tt.ev); got != tt.want {
				t.Errorf("expected action %d, got %d", tt.want, got)
			}
		})
	}
}
