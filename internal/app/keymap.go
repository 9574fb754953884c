package app

import "github.com/dshills/loupe/internal/render/backend"

// Action is a logical editing operation bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionMoveRight
	ActionMoveLeft
	ActionMoveDown
	ActionMoveUp
	ActionMoveEndOfLine
	ActionMoveStartOfLine
	ActionPageDown
	ActionPageUp
	ActionMoveEnd
	ActionMoveStart
	ActionDeleteLine
	ActionQuit
)

// bindingFor maps a key event to its action. Each operation has a letter
// binding (i/j/k/l cluster with shifted variants for larger motions) and a
// special-key alias. Unbound keys map to ActionNone and are ignored.
func bindingFor(ev backend.Event) Action {
	if ev.Type != backend.EventKey {
		return ActionNone
	}

	switch ev.Key {
	case backend.KeyRight:
		return ActionMoveRight
	case backend.KeyLeft:
		return ActionMoveLeft
	case backend.KeyDown:
		return ActionMoveDown
	case backend.KeyUp:
		return ActionMoveUp
	case backend.KeyEnd:
		return ActionMoveEndOfLine
	case backend.KeyHome:
		return ActionMoveStartOfLine
	case backend.KeyPageDown:
		return ActionPageDown
	case backend.KeyPageUp:
		return ActionPageUp
	case backend.KeyCtrlC:
		return ActionQuit
	case backend.KeyRune:
		return runeBinding(ev.Rune)
	default:
		return ActionNone
	}
}

func runeBinding(r rune) Action {
	switch r {
	case 'l':
		return ActionMoveRight
	case 'j':
		return ActionMoveLeft
	case 'k':
		return ActionMoveDown
	case 'i':
		return ActionMoveUp
	case 'L':
		return ActionMoveEndOfLine
	case 'J':
		return ActionMoveStartOfLine
	case 'K':
		return ActionPageDown
	case 'I':
		return ActionPageUp
	case '>':
		return ActionMoveEnd
	case '<':
		return ActionMoveStart
	case 'd':
		return ActionDeleteLine
	case 'q':
		return ActionQuit
	default:
		return ActionNone
	}
}
