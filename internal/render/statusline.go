package render

import (
	"fmt"

	"github.com/dshills/loupe/internal/buffer"
	"github.com/dshills/loupe/internal/render/backend"
)

// statusStyle is how the status line text is drawn.
var statusStyle = backend.Style{Bold: true, Foreground: backend.ColorBlue}

// drawStatus writes the status line on the row below the content area:
// name, source path, and 1-indexed column:line over the total line count.
func (r *Renderer) drawStatus(buf *buffer.Buffer, width, row int) {
	p := buf.Position()
	text := []rune(fmt.Sprintf("%s [%s]  %d:%d/%d",
		buf.Name(), buf.Path(), buf.Point()-p.Start+1, p.Line+1, buf.Lines()))

	for x := 0; x < width; x++ {
		ch := ' '
		style := backend.StyleDefault
		if x < len(text) {
			ch = text[x]
			style = statusStyle
		}
		r.backend.SetCell(x, row, ch, style)
	}
}
