package systems

import (
	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/constants"
	"github.com/lixenwraith/twin-shooter/engine"
	"github.com/lixenwraith/twin-shooter/physics"
)

// EnemySystem moves enemies down and resolves enemy-player and enemy-bullet collisions
type EnemySystem struct{}

// NewEnemySystem creates a new enemy system
func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

// Priority returns the system's priority
func (s *EnemySystem) Priority() int {
	return constants.PriorityEnemies
}

// Update makes a single pass over the current enemies and writes survivors to a fresh slice.
// Per enemy: move, then player collision (ends the session at once), then bullet collision
// (first bullet hit removes both and scores), then the bottom-edge cull.
func (s *EnemySystem) Update(state *engine.GameState) {
	kept := make([]components.Enemy, 0, cap(state.Enemies))

	for _, enemy := range state.Enemies {
		enemy.Y += enemy.Speed
		rect := enemy.Rect()

		if hit := hitPlayer(state, rect); hit >= 0 {
			state.EndSession(hit)
			return
		}

		if shotBy := hitBullet(state, rect); shotBy >= 0 {
			state.AddScore(shotBy)
			continue
		}

		if enemy.Y > state.Field.Height {
			continue
		}
		kept = append(kept, enemy)
	}

	state.Enemies = kept
}

// hitPlayer returns the index of the first player overlapping rect, -1 if none
func hitPlayer(state *engine.GameState, rect physics.Rect) int {
	for i := range state.Players {
		if state.Players[i].Rect().Overlaps(rect) {
			return i
		}
	}
	return -1
}

// hitBullet removes the first bullet overlapping rect and returns its owner, -1 if none
func hitBullet(state *engine.GameState, rect physics.Rect) int {
	for i := range state.Players {
		p := &state.Players[i]
		for k, b := range p.Bullets {
			if b.Rect().Overlaps(rect) {
				p.Bullets = removeBullet(p.Bullets, k)
				return i
			}
		}
	}
	return -1
}

// removeBullet returns a new slice without index k, order preserved
func removeBullet(bullets []components.Bullet, k int) []components.Bullet {
	out := make([]components.Bullet, 0, cap(bullets))
	out = append(out, bullets[:k]...)
	return append(out, bullets[k+1:]...)
}
