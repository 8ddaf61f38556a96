package components

import "github.com/lixenwraith/twin-shooter/physics"

// Direction of a horizontal move intent
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// String returns the direction name for logs
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Player is a controllable sprite pinned to the bottom of the field.
// Y never changes during a session; X stays within [0, fieldWidth-Width].
type Player struct {
	X, Y          float64
	Width, Height float64
	Color         ColorClass

	// Bullets owned by this player, oldest first
	Bullets []Bullet

	// Move intents, set and cleared by input between ticks
	MoveLeft  bool
	MoveRight bool
}

// Rect returns the player's bounding rectangle
func (p *Player) Rect() physics.Rect {
	return physics.NewRect(p.X, p.Y, p.Width, p.Height)
}

// SetIntent sets or clears the move intent for a direction
func (p *Player) SetIntent(dir Direction, active bool) {
	switch dir {
	case DirectionLeft:
		p.MoveLeft = active
	case DirectionRight:
		p.MoveRight = active
	}
}

// Clone returns a deep copy; the bullet slice is not shared
func (p Player) Clone() Player {
	c := p
	if p.Bullets != nil {
		c.Bullets = make([]Bullet, len(p.Bullets))
		copy(c.Bullets, p.Bullets)
	}
	return c
}
