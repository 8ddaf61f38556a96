// @focus: #render { palette }
package render

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/config"
	"github.com/lixenwraith/twin-shooter/constants"
)

// Palette resolves semantic color classes to concrete RGB values for both frontends
type Palette struct {
	colors     map[components.ColorClass]colorful.Color
	background colorful.Color
}

// NewPalette parses the configured hex colors once
func NewPalette(rules config.Rules) (*Palette, error) {
	if len(rules.PlayerColors) != constants.PlayerCount {
		return nil, fmt.Errorf("palette needs %d player colors, got %d", constants.PlayerCount, len(rules.PlayerColors))
	}

	p := &Palette{colors: make(map[components.ColorClass]colorful.Color)}

	entries := []struct {
		class components.ColorClass
		hex   string
	}{
		{components.ColorPlayerOne, rules.PlayerColors[0]},
		{components.ColorPlayerTwo, rules.PlayerColors[1]},
		{components.ColorEnemy, rules.EnemyColor},
		{components.ColorScore, rules.ScoreColor},
	}
	for _, e := range entries {
		c, err := colorful.Hex(e.hex)
		if err != nil {
			return nil, fmt.Errorf("color class %d: %w", e.class, err)
		}
		p.colors[e.class] = c
	}

	bg, err := colorful.Hex(constants.BackgroundColor)
	if err != nil {
		return nil, err
	}
	p.background = bg

	return p, nil
}

// lookup falls back to the score color (white by default) for unknown classes
func (p *Palette) lookup(class components.ColorClass) colorful.Color {
	if c, ok := p.colors[class]; ok {
		return c
	}
	return p.colors[components.ColorScore]
}

// RGBA returns the color for image drawing
func (p *Palette) RGBA(class components.ColorClass) color.RGBA {
	return toRGBA(p.lookup(class))
}

// Background returns the field background for image drawing
func (p *Palette) Background() color.RGBA {
	return toRGBA(p.background)
}

// Tcell returns the color as a terminal true color
func (p *Palette) Tcell(class components.ColorClass) tcell.Color {
	return toTcell(p.lookup(class))
}

// TcellBackground returns the field background as a terminal true color
func (p *Palette) TcellBackground() tcell.Color {
	return toTcell(p.background)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
