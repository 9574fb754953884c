// Package backend provides the terminal backend abstraction for the
// renderer: a small cell-write surface plus decoded input events. The tcell
// implementation owns the raw-mode terminal; the Null implementation backs
// tests.
package backend

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Key represents a keyboard key.
type Key int

// Key constants for the keys this program binds.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// Event represents a decoded terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune

	// Resize event fields
	Width, Height int
}

// Color identifies a display color.
type Color int

const (
	ColorDefault Color = iota
	ColorBlue
)

// Style describes how a cell is drawn.
type Style struct {
	Bold       bool
	Foreground Color
}

// StyleDefault is the unstyled cell style.
var StyleDefault = Style{}

// Backend is the terminal surface the renderer draws to and the application
// reads events from.
//
// Init acquires the terminal (raw mode, alternate screen) and Fini restores
// it; callers must guarantee Fini runs on every exit path. Cell writes become
// visible on Show.
type Backend interface {
	Init() error
	Fini()

	Size() (width, height int)

	SetCell(x, y int, r rune, style Style)
	ShowCursor(x, y int)
	Show()

	PollEvent() Event
}
