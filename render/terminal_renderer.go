package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/config"
	"github.com/lixenwraith/twin-shooter/constants"
	"github.com/lixenwraith/twin-shooter/engine"
	"github.com/lixenwraith/twin-shooter/physics"
)

// TerminalRenderer draws a frame onto a tcell screen.
// The field maps onto the screen below the status row, one cell per CellWidth x CellHeight field units;
// an entity fills every cell its rectangle overlaps.
type TerminalRenderer struct {
	screen  tcell.Screen
	palette *Palette
	cellW   float64
	cellH   float64

	Banner Banner
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen, palette *Palette, cfg config.Terminal) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		palette: palette,
		cellW:   cfg.CellWidth,
		cellH:   cfg.CellHeight,
	}
}

// FieldSize returns the field dimensions covered by the current screen
func (r *TerminalRenderer) FieldSize() (width, height float64) {
	cols, rows := r.screen.Size()
	rows -= constants.TerminalStatusRows
	if rows < 0 {
		rows = 0
	}
	return float64(cols) * r.cellW, float64(rows) * r.cellH
}

// RenderFrame renders the entire frame and shows it
func (r *TerminalRenderer) RenderFrame(frame engine.Snapshot) {
	bg := tcell.StyleDefault.Background(r.palette.TcellBackground())
	r.screen.Fill(' ', bg)

	for i := range frame.Players {
		p := &frame.Players[i]
		r.fillRect(p.Rect(), p.Color, bg)
		for _, b := range p.Bullets {
			r.fillRect(b.Rect(), b.Color, bg)
		}
	}
	for _, e := range frame.Enemies {
		r.fillRect(e.Rect(), components.ColorEnemy, bg)
	}

	r.drawStatus(frame.Score, bg)
	r.screen.Show()
}

// fillRect paints every on-screen cell overlapped by rect
func (r *TerminalRenderer) fillRect(rect physics.Rect, class components.ColorClass, bg tcell.Style) {
	cols, rows := r.screen.Size()
	style := bg.Foreground(r.palette.Tcell(class))

	c0 := max(int(math.Floor(rect.X/r.cellW)), 0)
	c1 := min(int(math.Ceil(rect.Right()/r.cellW)), cols)
	r0 := max(int(math.Floor(rect.Y/r.cellH)), 0)
	r1 := min(int(math.Ceil(rect.Bottom()/r.cellH)), rows-constants.TerminalStatusRows)

	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			cell := physics.NewRect(float64(col)*r.cellW, float64(row)*r.cellH, r.cellW, r.cellH)
			if !physics.Overlaps(cell, rect) {
				continue
			}
			r.screen.SetContent(col, row+constants.TerminalStatusRows, constants.EntityChar, nil, style)
		}
	}
}

// drawStatus writes the score and any banner on the status row
func (r *TerminalRenderer) drawStatus(score int, bg tcell.Style) {
	style := bg.Foreground(r.palette.Tcell(components.ColorScore))
	text := fmt.Sprintf("Score: %d", score)
	x := r.drawText(0, 0, text, style)

	if banner := r.Banner.Next(); banner != "" {
		r.drawText(x+3, 0, banner, style.Bold(true))
	}
}

// drawText writes ASCII text and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	cols, _ := r.screen.Size()
	for _, ch := range text {
		if x >= cols {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
