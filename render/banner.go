package render

import (
	"fmt"

	"github.com/lixenwraith/twin-shooter/constants"
	"github.com/lixenwraith/twin-shooter/engine"
)

// bannerFrames is how many rendered frames the game over banner survives
var bannerFrames = int(constants.GameOverBannerDuration / constants.FrameUpdateInterval)

// Banner is a transient status message counted down in frames
type Banner struct {
	text   string
	frames int
}

// HandleEvents shows the final score of the latest finished session
func (b *Banner) HandleEvents(events []engine.GameEvent) {
	for _, ev := range events {
		if ev.Type != engine.EventGameOver {
			continue
		}
		if over, ok := ev.Payload.(engine.GameOverPayload); ok {
			b.Show(fmt.Sprintf("Game Over! Your score was: %d", over.Score), bannerFrames)
		}
	}
}

// Show displays text for the given number of frames
func (b *Banner) Show(text string, frames int) {
	b.text = text
	b.frames = frames
}

// Next returns the text to draw this frame and counts it down, empty when expired
func (b *Banner) Next() string {
	if b.frames <= 0 {
		return ""
	}
	b.frames--
	return b.text
}
