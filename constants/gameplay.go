// @focus: #constants { gameplay }
package constants

// Population caps
const (
	// MaxBulletsPerPlayer caps the live bullets owned by one player
	MaxBulletsPerPlayer = 5

	// MaxEnemies caps the live enemies on the field
	MaxEnemies = 5
)

// Scoring
const (
	// ScoreIncrement is awarded for each enemy destroyed by a bullet
	ScoreIncrement = 10
)
