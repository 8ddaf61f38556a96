package systems

import (
	"math/rand"

	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/config"
	"github.com/lixenwraith/twin-shooter/constants"
	"github.com/lixenwraith/twin-shooter/engine"
)

// TrySpawnEnemy appends one enemy above the field unless the population cap is reached.
// The x position is uniform in [0, fieldWidth-EnemySize].
func TrySpawnEnemy(enemies []components.Enemy, rules config.Rules, fieldWidth float64, rng *rand.Rand) ([]components.Enemy, bool) {
	if len(enemies) >= rules.MaxEnemies {
		return enemies, false
	}

	span := max(fieldWidth-rules.EnemySize, 0)
	enemy := components.Enemy{
		X:     rng.Float64() * span,
		Y:     -rules.EnemySize,
		Size:  rules.EnemySize,
		Speed: rules.EnemySpeed,
	}
	return append(enemies, enemy), true
}

// SpawnSystem attempts one enemy spawn every tick; the cap check is internal
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update spawns at most one enemy
func (s *SpawnSystem) Update(state *engine.GameState) {
	state.Enemies, _ = TrySpawnEnemy(state.Enemies, state.Rules, state.Field.Width, state.Rand)
}
