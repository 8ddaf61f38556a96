package components

import "github.com/lixenwraith/twin-shooter/physics"

// Bullet travels straight up from the player that fired it
type Bullet struct {
	X, Y          float64
	Width, Height float64
	Color         ColorClass // Inherited from the owner at creation
}

// Rect returns the bullet's bounding rectangle
func (b Bullet) Rect() physics.Rect {
	return physics.NewRect(b.X, b.Y, b.Width, b.Height)
}
