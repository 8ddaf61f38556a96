package constants

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// TestDefaultColorsParse verifies every default color is valid hex
func TestDefaultColorsParse(t *testing.T) {
	for _, hex := range []string{PlayerOneColor, PlayerTwoColor, EnemyColor, ScoreColor, BackgroundColor} {
		if _, err := colorful.Hex(hex); err != nil {
			t.Errorf("color %q: %v", hex, err)
		}
	}
}

// TestBannerOutlastsFrames verifies the banner stays up for more than one frame
func TestBannerOutlastsFrames(t *testing.T) {
	if frames := GameOverBannerDuration / FrameUpdateInterval; frames < 2 {
		t.Errorf("banner shows for %d frames", frames)
	}
}

// TestFieldFitsDefaultWindow verifies both players fit side by side in the default window
func TestFieldFitsDefaultWindow(t *testing.T) {
	if float64(WindowWidth) < PlayerCount*PlayerWidth {
		t.Errorf("window width %d cannot hold %d players", WindowWidth, PlayerCount)
	}
	if float64(WindowHeight) < PlayerHeight {
		t.Errorf("window height %d below player height", WindowHeight)
	}
}
