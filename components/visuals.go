// @focus: #render { types }
package components

// ColorClass represents semantic color categories for rendering
// Renderers resolve these to concrete RGB values through their palette
type ColorClass uint8

const (
	ColorNone ColorClass = iota
	ColorPlayerOne
	ColorPlayerTwo
	ColorEnemy
	ColorScore
)

// PlayerColor returns the color class owned by the player at index
func PlayerColor(index int) ColorClass {
	if index == 1 {
		return ColorPlayerTwo
	}
	return ColorPlayerOne
}
