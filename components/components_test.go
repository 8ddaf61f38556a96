package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/twin-shooter/physics"
)

func TestPlayerSetIntent(t *testing.T) {
	var p Player

	p.SetIntent(DirectionLeft, true)
	assert.True(t, p.MoveLeft)
	assert.False(t, p.MoveRight)

	p.SetIntent(DirectionRight, true)
	assert.True(t, p.MoveLeft, "intents are independent")
	assert.True(t, p.MoveRight)

	p.SetIntent(DirectionLeft, false)
	assert.False(t, p.MoveLeft)
	assert.True(t, p.MoveRight)
}

func TestPlayerCloneDoesNotShareBullets(t *testing.T) {
	p := Player{X: 10, Bullets: []Bullet{{X: 1, Y: 2}}}
	c := p.Clone()

	c.Bullets[0].Y = 99
	c.Bullets = append(c.Bullets, Bullet{})

	assert.Equal(t, 2.0, p.Bullets[0].Y)
	assert.Len(t, p.Bullets, 1)
}

func TestRects(t *testing.T) {
	p := Player{X: 1, Y: 2, Width: 50, Height: 40}
	assert.Equal(t, physics.NewRect(1, 2, 50, 40), p.Rect())

	b := Bullet{X: 3, Y: 4, Width: 10, Height: 20}
	assert.Equal(t, physics.NewRect(3, 4, 10, 20), b.Rect())

	e := Enemy{X: 5, Y: 6, Size: 30, Speed: 5}
	assert.Equal(t, physics.NewRect(5, 6, 30, 30), e.Rect())
}

func TestPlayerColor(t *testing.T) {
	assert.Equal(t, ColorPlayerOne, PlayerColor(0))
	assert.Equal(t, ColorPlayerTwo, PlayerColor(1))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", DirectionLeft.String())
	assert.Equal(t, "right", DirectionRight.String())
	assert.Equal(t, "unknown", Direction(9).String())
}
