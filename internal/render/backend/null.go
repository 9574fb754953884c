package backend

import "strings"

// NullBackend is an in-memory Backend for tests: cell writes land in a rune
// grid and PollEvent replays queued events.
type NullBackend struct {
	width, height int
	runes         [][]rune
	styles        [][]Style

	cursorX, cursorY int
	shows            int
	finished         bool

	events []Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{width: width, height: height}
	b.runes = make([][]rune, height)
	b.styles = make([][]Style, height)
	for y := 0; y < height; y++ {
		b.runes[y] = make([]rune, width)
		b.styles[y] = make([]Style, width)
		for x := 0; x < width; x++ {
			b.runes[y][x] = ' '
		}
	}
	return b
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Fini() { b.finished = true }

func (b *NullBackend) Size() (int, int) { return b.width, b.height }

func (b *NullBackend) SetCell(x, y int, r rune, style Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.runes[y][x] = r
	b.styles[y][x] = style
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX, b.cursorY = x, y
}

func (b *NullBackend) Show() { b.shows++ }

// PollEvent pops the next queued event, or EventNone when the queue is
// drained.
func (b *NullBackend) PollEvent() Event {
	if len(b.events) == 0 {
		return Event{Type: EventNone}
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev
}

// QueueEvent appends an event for PollEvent to return.
func (b *NullBackend) QueueEvent(ev Event) {
	b.events = append(b.events, ev)
}

// QueueRunes queues one key event per rune.
func (b *NullBackend) QueueRunes(s string) {
	for _, r := range s {
		b.QueueEvent(Event{Type: EventKey, Key: KeyRune, Rune: r})
	}
}

// Cursor returns the last cursor placement.
func (b *NullBackend) Cursor() (x, y int) { return b.cursorX, b.cursorY }

// Finished reports whether Fini has been called.
func (b *NullBackend) Finished() bool { return b.finished }

// Shows returns how many times Show has been called.
func (b *NullBackend) Shows() int { return b.shows }

// RowText returns the text of screen row y with trailing spaces trimmed.
func (b *NullBackend) RowText(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return strings.TrimRight(string(b.runes[y]), " ")
}

// StyleAt returns the style of the cell at (x, y).
func (b *NullBackend) StyleAt(x, y int) Style {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return StyleDefault
	}
	return b.styles[y][x]
}
