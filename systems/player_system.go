package systems

import (
	"github.com/lixenwraith/twin-shooter/constants"
	"github.com/lixenwraith/twin-shooter/engine"
)

// PlayerSystem applies held move intents
type PlayerSystem struct{}

// NewPlayerSystem creates a new player movement system
func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayers
}

// Update moves each player by PlayerSpeed per held direction.
// A direction applies only while the player is not already at that edge, and the step
// stops at the edge, so x stays in [0, fieldWidth-width].
func (s *PlayerSystem) Update(state *engine.GameState) {
	speed := state.Rules.PlayerSpeed

	for i := range state.Players {
		p := &state.Players[i]
		maxX := state.Field.Width - p.Width

		if p.MoveLeft && p.X > 0 {
			p.X -= min(speed, p.X)
		}
		if p.MoveRight && p.X < maxX {
			p.X += min(speed, maxX-p.X)
		}
	}
}
