package input

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/constants"
)

// fireRepeatWindow separates a held fire key's auto-repeat from a fresh press
const fireRepeatWindow = 100 * time.Millisecond

type holdKey struct {
	player int
	dir    components.Direction
}

// TerminalAdapter turns tcell key events into intents.
// Terminals report presses only, so a move key counts as held until
// no repeat arrives within the hold timeout; pressing the opposite
// direction releases the current one immediately.
type TerminalAdapter struct {
	sink        Sink
	table       *KeyTable
	holdTimeout time.Duration
	now         func() time.Time

	held     map[holdKey]time.Time
	lastFire [constants.PlayerCount]time.Time
}

// NewTerminalAdapter creates an adapter feeding sink with the given bindings
func NewTerminalAdapter(sink Sink, table *KeyTable, holdTimeout time.Duration) *TerminalAdapter {
	if table == nil {
		table = DefaultKeyTable()
	}
	if holdTimeout <= 0 {
		holdTimeout = constants.TerminalHoldTimeout
	}
	return &TerminalAdapter{
		sink:        sink,
		table:       table,
		holdTimeout: holdTimeout,
		now:         time.Now,
		held:        make(map[holdKey]time.Time),
	}
}

// SetClock replaces the time source
func (a *TerminalAdapter) SetClock(now func() time.Time) {
	a.now = now
}

// HandleKey applies one key event and reports whether the user asked to quit
func (a *TerminalAdapter) HandleKey(ev *tcell.EventKey) (quit bool, err error) {
	entry, ok := a.table.Lookup(ev)
	if !ok {
		return false, nil
	}

	switch entry.Action {
	case ActionQuit:
		return true, nil
	case ActionFire:
		return false, a.fire(entry.Player)
	case ActionMoveLeft, ActionMoveRight:
		dir, _ := entry.Action.Direction()
		return false, a.press(entry.Player, dir)
	}
	return false, nil
}

func (a *TerminalAdapter) fire(player int) error {
	if player < 0 || player >= constants.PlayerCount {
		return a.sink.FireRequested(player)
	}
	now := a.now()
	last := a.lastFire[player]
	a.lastFire[player] = now
	if !last.IsZero() && now.Sub(last) < fireRepeatWindow {
		return nil
	}
	return a.sink.FireRequested(player)
}

func (a *TerminalAdapter) press(player int, dir components.Direction) error {
	var errs []error

	opposite := holdKey{player, opposite(dir)}
	if _, ok := a.held[opposite]; ok {
		delete(a.held, opposite)
		errs = append(errs, a.sink.SetMoveIntent(player, opposite.dir, false))
	}

	a.held[holdKey{player, dir}] = a.now()
	errs = append(errs, a.sink.SetMoveIntent(player, dir, true))
	return errors.Join(errs...)
}

// Update releases move keys whose repeats stopped arriving
func (a *TerminalAdapter) Update() error {
	now := a.now()
	var errs []error
	for key, last := range a.held {
		if now.Sub(last) < a.holdTimeout {
			continue
		}
		delete(a.held, key)
		errs = append(errs, a.sink.SetMoveIntent(key.player, key.dir, false))
	}
	return errors.Join(errs...)
}

// Held reports whether a move key is currently considered held
func (a *TerminalAdapter) Held(player int, dir components.Direction) bool {
	_, ok := a.held[holdKey{player, dir}]
	return ok
}

func opposite(dir components.Direction) components.Direction {
	if dir == components.DirectionLeft {
		return components.DirectionRight
	}
	return components.DirectionLeft
}
