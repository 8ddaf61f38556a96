package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the terminal frame interval (~60 FPS), one simulation tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the capacity of the input and game event ring buffers
	EventQueueSize = 256
)

// PlayerCount is the number of players in every session
const PlayerCount = 2
