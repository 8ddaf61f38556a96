package components

import "github.com/lixenwraith/twin-shooter/physics"

// Enemy is a square sprite descending at a constant speed, no horizontal motion
type Enemy struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Rect returns the enemy's bounding rectangle
func (e Enemy) Rect() physics.Rect {
	return physics.NewRect(e.X, e.Y, e.Size, e.Size)
}
