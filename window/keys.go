package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/twin-shooter/input"
)

// KeyState reports per-tick key edges
type KeyState interface {
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
}

// ebitenKeys reads edges from ebiten's input state
type ebitenKeys struct{}

func (ebitenKeys) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (ebitenKeys) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

type binding struct {
	key   ebiten.Key
	entry input.KeyEntry
}

// defaultBindings returns the two-player window bindings in poll order
func defaultBindings() []binding {
	return []binding{
		{ebiten.KeyEscape, input.KeyEntry{Action: input.ActionQuit}},
		{ebiten.KeyArrowLeft, input.KeyEntry{Action: input.ActionMoveLeft, Player: 0}},
		{ebiten.KeyArrowRight, input.KeyEntry{Action: input.ActionMoveRight, Player: 0}},
		{ebiten.KeyControlLeft, input.KeyEntry{Action: input.ActionFire, Player: 0}},
		{ebiten.KeyControlRight, input.KeyEntry{Action: input.ActionFire, Player: 0}},
		{ebiten.KeyA, input.KeyEntry{Action: input.ActionMoveLeft, Player: 1}},
		{ebiten.KeyD, input.KeyEntry{Action: input.ActionMoveRight, Player: 1}},
		{ebiten.KeyShiftLeft, input.KeyEntry{Action: input.ActionFire, Player: 1}},
		{ebiten.KeyShiftRight, input.KeyEntry{Action: input.ActionFire, Player: 1}},
	}
}

// KeyAdapter forwards window key edges to a sink.
// The window reports real key releases, so move intents follow press and release directly.
type KeyAdapter struct {
	sink     input.Sink
	keys     KeyState
	bindings []binding
}

// NewKeyAdapter creates an adapter polling ebiten's keyboard
func NewKeyAdapter(sink input.Sink) *KeyAdapter {
	return &KeyAdapter{sink: sink, keys: ebitenKeys{}, bindings: defaultBindings()}
}

// Poll applies this tick's key edges and reports whether the user asked to quit
func (a *KeyAdapter) Poll() (quit bool, err error) {
	var errs []error
	for _, b := range a.bindings {
		pressed := a.keys.JustPressed(b.key)
		released := a.keys.JustReleased(b.key)
		if !pressed && !released {
			continue
		}

		switch b.entry.Action {
		case input.ActionQuit:
			if pressed {
				quit = true
			}
		case input.ActionFire:
			if pressed {
				errs = append(errs, a.sink.FireRequested(b.entry.Player))
			}
		case input.ActionMoveLeft, input.ActionMoveRight:
			dir, _ := b.entry.Action.Direction()
			if pressed {
				errs = append(errs, a.sink.SetMoveIntent(b.entry.Player, dir, true))
			}
			if released {
				errs = append(errs, a.sink.SetMoveIntent(b.entry.Player, dir, false))
			}
		}
	}
	return quit, errors.Join(errs...)
}
