// Package render projects buffer state onto the terminal backend.
//
// Rendering is a pure function of the buffer: the renderer reads lines, the
// point and the viewport, writes cells, and never mutates editor state. Every
// cell of the frame is written on each pass, so stale content clears itself.
package render

import (
	"github.com/dshills/loupe/internal/buffer"
	"github.com/dshills/loupe/internal/render/backend"
)

// Renderer draws a buffer to a backend.
type Renderer struct {
	backend backend.Backend
}

// New creates a renderer over the given backend.
func New(b backend.Backend) *Renderer {
	return &Renderer{backend: b}
}

// Render draws one full frame: the visible lines, the status line on the row
// below them, and the terminal cursor at the point's screen position.
func (r *Renderer) Render(buf *buffer.Buffer) {
	width, height := r.backend.Size()
	rows := height - 1 // bottom row is the status line
	if rows < 1 {
		rows = 1
	}

	r.drawContent(buf, width, rows)
	r.drawStatus(buf, width, rows)
	r.placeCursor(buf, width)
	r.backend.Show()
}

// drawContent writes the visible window of lines. Rows past the end of the
// document are blanked, which also clears the whole area for an empty
// document.
func (r *Renderer) drawContent(buf *buffer.Buffer, width, rows int) {
	origin := buf.View().Origin()

	for row := 0; row < rows; row++ {
		line := origin + row
		var text []rune
		if line < buf.Lines() {
			text = []rune(buf.LineText(line))
		}

		for x := 0; x < width; x++ {
			ch := ' '
			if x < len(text) {
				ch = text[x]
			}
			r.backend.SetCell(x, row, ch, backend.StyleDefault)
		}
	}
}

// placeCursor positions the terminal cursor at the point's (column, row),
// clamped to the visible width.
func (r *Renderer) placeCursor(buf *buffer.Buffer, width int) {
	p := buf.Position()
	col := min(buf.Point()-p.Start, width-1)
	r.backend.ShowCursor(col, buf.View().RowFor(p.Line))
}
