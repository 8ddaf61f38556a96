// @focus: #constants { entities }
package constants

// --- Player Entity ---
const (
	// PlayerWidth is the width of a player sprite in field units
	PlayerWidth = 50.0

	// PlayerHeight is the height of a player sprite in field units
	PlayerHeight = 50.0

	// PlayerSpeed is the horizontal displacement per tick while a move intent is held
	PlayerSpeed = 7.0
)

// --- Bullet Entity ---
const (
	// BulletWidth is the width of a bullet in field units
	BulletWidth = 10.0

	// BulletHeight is the height of a bullet in field units
	BulletHeight = 20.0

	// BulletSpeed is the upward displacement per tick
	BulletSpeed = 15.0
)

// --- Enemy Entity ---
const (
	// EnemySize is the edge length of the square enemy sprite
	EnemySize = 30.0

	// EnemySpeed is the downward displacement per tick
	EnemySpeed = 5.0
)
