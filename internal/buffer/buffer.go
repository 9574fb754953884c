package buffer

import (
	"path/filepath"

	"github.com/dshills/loupe/internal/text"
	"github.com/dshills/loupe/internal/viewport"
)

// Buffer owns one document, the point into it, and the viewport over it.
// It is not safe for concurrent use; the application drives it from a single
// event loop.
type Buffer struct {
	name  string
	path  string
	point int
	store *text.Store
	view  *viewport.Viewport
}

// New creates a buffer over an existing store.
func New(name, path string, store *text.Store, view *viewport.Viewport) *Buffer {
	return &Buffer{name: name, path: path, store: store, view: view}
}

// Open loads the file at path into a new buffer with the given viewport
// height. The display name is the file's base name.
func Open(path string, height int) (*Buffer, error) {
	store, err := text.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(filepath.Base(path), path, store, viewport.New(height)), nil
}

// Name returns the buffer's display name.
func (b *Buffer) Name() string { return b.name }

// Path returns the source path the buffer was loaded from.
func (b *Buffer) Path() string { return b.path }

// Point returns the current linear offset.
func (b *Buffer) Point() int { return b.point }

// Len returns the document length in runes.
func (b *Buffer) Len() int { return b.store.Len() }

// Lines returns the number of lines in the document.
func (b *Buffer) Lines() int { return b.store.LineCount() }

// LineText returns the text of line index, without a terminator.
func (b *Buffer) LineText(index int) string { return b.store.LineText(index) }

// View returns the buffer's viewport.
func (b *Buffer) View() *viewport.Viewport { return b.view }

// Position resolves the point to line coordinates.
func (b *Buffer) Position() text.Position {
	return b.store.Resolve(b.point)
}

// Column returns the point's column within its line, 0-based.
func (b *Buffer) Column() int {
	return b.point - b.Position().Start
}

// MoveRight advances the point by one rune, clamped at the end of the
// document.
func (b *Buffer) MoveRight() {
	b.point = min(b.store.Len(), b.point+1)
	b.view.Adjust(b.Position().Line)
}

// MoveLeft retreats the point by one rune, clamped at zero.
func (b *Buffer) MoveLeft() {
	b.point = max(0, b.point-1)
	b.view.Adjust(b.Position().Line)
}

// MoveDown advances the point to the start of the next line, clamped at the
// end of the document.
func (b *Buffer) MoveDown() {
	p := b.Position()
	b.point = min(b.store.Len(), p.Start+p.Length+1)
	b.view.Adjust(b.Position().Line)
}

// MoveUp retreats the point to the start of the previous line, or to zero
// when already on the first line.
func (b *Buffer) MoveUp() {
	p := b.Position()
	if p.Start == 0 {
		b.point = 0
	} else {
		// Step onto the previous line's separator, then snap to its start.
		b.point = p.Start - 1
		b.point = b.Position().Start
	}
	b.view.Adjust(b.Position().Line)
}

// MoveStartOfLine places the point at the start of the current line.
func (b *Buffer) MoveStartOfLine() {
	b.point = b.Position().Start
}

// MoveEndOfLine places the point just past the last rune of the current
// line, on the separator position.
func (b *Buffer) MoveEndOfLine() {
	p := b.Position()
	b.point = p.Start + p.Length
}

// MoveStart places the point at the beginning of the document.
func (b *Buffer) MoveStart() {
	b.point = 0
	b.view.Adjust(0)
}

// MoveEnd places the point at the end of the document.
func (b *Buffer) MoveEnd() {
	if b.store.LineCount() == 0 {
		b.point = 0
		b.view.Adjust(0)
		return
	}
	b.point = b.store.Len()
	b.view.Adjust(b.store.LineCount() - 1)
}

// PageDown repeats MoveDown rows times.
func (b *Buffer) PageDown(rows int) {
	for i := 0; i < rows; i++ {
		b.MoveDown()
	}
}

// PageUp repeats MoveUp rows times.
func (b *Buffer) PageUp(rows int) {
	for i := 0; i < rows; i++ {
		b.MoveUp()
	}
}

// DeleteLine removes the line containing the point. The point is clamped to
// the deleted line's start offset, which lands on the line that moved up
// (or the end of a now-shorter document). Empty buffers are left untouched.
func (b *Buffer) DeleteLine() {
	if b.store.LineCount() == 0 {
		return
	}
	p := b.Position()
	b.store.DeleteLine(p.Line)
	b.point = min(b.store.Len(), p.Start)
	b.view.Adjust(b.Position().Line)
}
