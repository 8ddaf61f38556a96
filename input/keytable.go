package input

import "github.com/gdamore/tcell/v2"

// KeyEntry binds a key to an action for one player
// Player is ignored for system actions
type KeyEntry struct {
	Action ActionType
	Player int
}

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default two-player terminal bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {ActionQuit, 0},
			tcell.KeyCtrlC:  {ActionQuit, 0},
			tcell.KeyLeft:   {ActionMoveLeft, 0},
			tcell.KeyRight:  {ActionMoveRight, 0},
			tcell.KeyUp:     {ActionFire, 0},
			tcell.KeyEnter:  {ActionFire, 0},
		},
		Runes: map[rune]KeyEntry{
			'a': {ActionMoveLeft, 1},
			'd': {ActionMoveRight, 1},
			'w': {ActionFire, 1},
			' ': {ActionFire, 1},
		},
	}
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		entry, ok := kt.Runes[r]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}
