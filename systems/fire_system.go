package systems

import (
	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/config"
	"github.com/lixenwraith/twin-shooter/constants"
	"github.com/lixenwraith/twin-shooter/engine"
)

// TryFireBullet appends a bullet centred on the player unless the per-player cap is reached
func TryFireBullet(p *components.Player, rules config.Rules) bool {
	if len(p.Bullets) >= rules.MaxBulletsPerPlayer {
		return false
	}

	p.Bullets = append(p.Bullets, components.Bullet{
		X:      p.X + p.Width/2 - rules.BulletWidth/2,
		Y:      p.Y,
		Width:  rules.BulletWidth,
		Height: rules.BulletHeight,
		Color:  p.Color,
	})
	return true
}

// FireSystem executes the fire requests received since the previous tick.
// Requests fire from the player position they were made at, before anything moves.
type FireSystem struct{}

// NewFireSystem creates a new fire system
func NewFireSystem() *FireSystem {
	return &FireSystem{}
}

// Priority returns the system's priority
func (s *FireSystem) Priority() int {
	return constants.PriorityFire
}

// Update fires once per pending request, in arrival order
func (s *FireSystem) Update(state *engine.GameState) {
	for _, player := range state.PendingFires {
		TryFireBullet(&state.Players[player], state.Rules)
	}
	state.PendingFires = state.PendingFires[:0]
}
