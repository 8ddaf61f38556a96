package systems

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/twin-shooter/config"
	"github.com/lixenwraith/twin-shooter/engine"
)

const (
	testFieldWidth  = 800.0
	testFieldHeight = 600.0
)

// newTestState returns a running session on an 800x600 field with the stock rules
func newTestState(t *testing.T) (*engine.GameState, *engine.EventQueue) {
	t.Helper()
	events := engine.NewEventQueue()
	state := engine.NewGameState(
		config.DefaultRules(),
		engine.Field{Width: testFieldWidth, Height: testFieldHeight},
		rand.New(rand.NewSource(1)),
		events,
	)
	events.Consume()
	return state, events
}
