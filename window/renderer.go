package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/engine"
	"github.com/lixenwraith/twin-shooter/physics"
	"github.com/lixenwraith/twin-shooter/render"
)

// Renderer draws frames one field unit per pixel
type Renderer struct {
	palette *render.Palette
	Banner  render.Banner
}

// NewRenderer creates a window renderer
func NewRenderer(palette *render.Palette) *Renderer {
	return &Renderer{palette: palette}
}

// Draw renders the frame onto screen
func (r *Renderer) Draw(screen *ebiten.Image, frame engine.Snapshot) {
	screen.Fill(r.palette.Background())

	for i := range frame.Players {
		p := &frame.Players[i]
		r.fillRect(screen, p.Rect(), p.Color)
		for _, b := range p.Bullets {
			r.fillRect(screen, b.Rect(), b.Color)
		}
	}
	for _, e := range frame.Enemies {
		r.fillRect(screen, e.Rect(), components.ColorEnemy)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", frame.Score), 8, 8)
	if banner := r.Banner.Next(); banner != "" {
		x := int(frame.Field.Width/2) - len(banner)*3
		y := int(frame.Field.Height / 2)
		ebitenutil.DebugPrintAt(screen, banner, max(x, 0), y)
	}
}

func (r *Renderer) fillRect(screen *ebiten.Image, rect physics.Rect, class components.ColorClass) {
	vector.DrawFilledRect(screen,
		float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H),
		r.palette.RGBA(class), false)
}
