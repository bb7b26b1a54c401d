package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionPrev
	ActionNext
	ActionDrop
	ActionDropSlot
	ActionBrew
	ActionHint
	ActionRestart
	ActionNextLevel
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyUp:
		return ActionPrev
	case tcell.KeyRight, tcell.KeyDown, tcell.KeyTab:
		return ActionNext
	case tcell.KeyEnter:
		return ActionDrop
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}
	if ev.Key() != tcell.KeyRune {
		return ActionNone
	}

	switch ev.Rune() {
	case 'h', 'H', 'k', 'K':
		return ActionPrev
	case 'l', 'L', 'j', 'J':
		return ActionNext
	case ' ':
		return ActionDrop
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return ActionDropSlot
	case 'b', 'B':
		return ActionBrew
	case '?':
		return ActionHint
	case 'r', 'R':
		return ActionRestart
	case 'n', 'N':
		return ActionNextLevel
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// slotFromKey returns the 0-indexed shelf slot for digit keys 1-9.
func slotFromKey(ev *tcell.EventKey) (int, bool) {
	r := ev.Rune()
	if ev.Key() != tcell.KeyRune || r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}
