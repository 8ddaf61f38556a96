package constants

import "time"

// Default colors as hex strings, parsed once by the palette
const (
	PlayerOneColor  = "#3050ff"
	PlayerTwoColor  = "#ff3030"
	EnemyColor      = "#30c030"
	ScoreColor      = "#ffffff"
	BackgroundColor = "#000000"
)

// Terminal frontend
const (
	// TerminalCellWidth is the field width covered by one terminal column
	TerminalCellWidth = 10.0

	// TerminalCellHeight is the field height covered by one terminal row
	TerminalCellHeight = 20.0

	// TerminalHoldTimeout releases a move key when no repeat arrived in this window.
	// Terminals report presses only, and the first auto-repeat usually lags by ~250-500ms.
	TerminalHoldTimeout = 500 * time.Millisecond

	// TerminalStatusRows is the number of rows reserved above the field
	TerminalStatusRows = 1

	// EntityChar fills every cell covered by an entity
	EntityChar = '█'
)

// Window frontend
const (
	WindowWidth  = 960
	WindowHeight = 720
	WindowTitle  = "Twin Shooter"
)

// GameOverBannerDuration is how long the final score stays on screen after a game over
const GameOverBannerDuration = 2 * time.Second
