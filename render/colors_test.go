package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/config"
)

func TestPaletteResolvesClasses(t *testing.T) {
	p, err := NewPalette(config.DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 0x30, G: 0x50, B: 0xff, A: 0xff}, p.RGBA(components.ColorPlayerOne))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}, p.RGBA(components.ColorPlayerTwo))
	assert.Equal(t, color.RGBA{R: 0x30, G: 0xc0, B: 0x30, A: 0xff}, p.RGBA(components.ColorEnemy))
	assert.Equal(t, color.RGBA{A: 0xff}, p.Background())

	assert.Equal(t, tcell.NewRGBColor(0x30, 0xc0, 0x30), p.Tcell(components.ColorEnemy))
}

func TestPaletteUnknownClassFallsBackToScore(t *testing.T) {
	p, err := NewPalette(config.DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, p.RGBA(components.ColorScore), p.RGBA(components.ColorNone))
}

func TestPaletteRejectsBadColors(t *testing.T) {
	rules := config.DefaultRules()
	rules.EnemyColor = "green"
	_, err := NewPalette(rules)
	assert.Error(t, err)

	rules = config.DefaultRules()
	rules.PlayerColors = rules.PlayerColors[:1]
	_, err = NewPalette(rules)
	assert.Error(t, err)
}
