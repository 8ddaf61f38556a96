package constants

// System Execution Priorities (lower runs first)
// The order is observable: frame capture sits after player movement and before bullets and enemies move.
const (
	PriorityFire    = 10 // Fire requests queued between ticks
	PrioritySpawn   = 20
	PriorityPlayers = 30
	PriorityRender  = 40 // Frame capture point, not a system
	PriorityBullets = 50
	PriorityEnemies = 60 // Collisions and scoring
)
