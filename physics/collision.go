package physics

// Rect is an axis-aligned rectangle in field units, origin top-left, y grows downward
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from position and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether r and other share a positive-area region
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}

// Overlaps tests two rectangles with half-open intervals: touching edges do not collide.
// A rectangle with zero or negative width or height never overlaps anything, itself included.
func Overlaps(a, b Rect) bool {
	if a.W <= 0 || a.H <= 0 || b.W <= 0 || b.H <= 0 {
		return false
	}
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}
