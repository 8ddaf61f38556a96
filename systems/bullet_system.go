package systems

import (
	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/constants"
	"github.com/lixenwraith/twin-shooter/engine"
)

// BulletSystem moves bullets up and culls those past the top edge
type BulletSystem struct{}

// NewBulletSystem creates a new bullet system
func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

// Priority returns the system's priority
func (s *BulletSystem) Priority() int {
	return constants.PriorityBullets
}

// Update advances every bullet, keeping survivors in their original order
func (s *BulletSystem) Update(state *engine.GameState) {
	speed := state.Rules.BulletSpeed

	for i := range state.Players {
		p := &state.Players[i]

		kept := make([]components.Bullet, 0, cap(p.Bullets))
		for _, b := range p.Bullets {
			b.Y -= speed
			if b.Y < 0 {
				continue
			}
			kept = append(kept, b)
		}
		p.Bullets = kept
	}
}
