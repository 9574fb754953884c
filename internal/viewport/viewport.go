// Package viewport tracks the visible window of lines and its scroll origin.
package viewport

// Viewport is the visible window over the document: the first visible line
// and the number of text rows available. It moves only through Adjust, which
// every cursor movement calls to keep the cursor's line in view.
type Viewport struct {
	origin int
	height int
}

// New creates a viewport with the given height in text rows.
// Height is clamped to a minimum of 1.
func New(height int) *Viewport {
	if height < 1 {
		height = 1
	}
	return &Viewport{height: height}
}

// Origin returns the first visible line index.
func (v *Viewport) Origin() int {
	return v.origin
}

// Height returns the number of visible text rows.
func (v *Viewport) Height() int {
	return v.height
}

// Resize updates the viewport height, clamped to a minimum of 1.
// The caller re-establishes visibility with Adjust afterwards.
func (v *Viewport) Resize(height int) {
	if height < 1 {
		height = 1
	}
	v.height = height
}

// Contains reports whether line is within the visible window.
func (v *Viewport) Contains(line int) bool {
	return line >= v.origin && line < v.origin+v.height
}

// Adjust scrolls the minimum amount needed to bring line into view: up so
// line becomes the first visible row, or down so it becomes the last. A line
// already in view leaves the origin unchanged.
func (v *Viewport) Adjust(line int) {
	if line < v.origin {
		v.origin = line
	} else if line >= v.origin+v.height {
		v.origin = line - v.height + 1
	}
}

// RowFor converts a visible line index to a screen row relative to the
// origin. The caller guarantees the line is in view.
func (v *Viewport) RowFor(line int) int {
	return line - v.origin
}
