// Package input translates frontend key events into player intents on the game controller.
package input

import "github.com/lixenwraith/twin-shooter/components"

// ActionType discriminates semantic actions
type ActionType uint8

const (
	ActionNone ActionType = iota
	ActionQuit
	ActionMoveLeft
	ActionMoveRight
	ActionFire
)

func (a ActionType) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionFire:
		return "fire"
	default:
		return "none"
	}
}

// Direction returns the move direction for move actions
func (a ActionType) Direction() (components.Direction, bool) {
	switch a {
	case ActionMoveLeft:
		return components.DirectionLeft, true
	case ActionMoveRight:
		return components.DirectionRight, true
	default:
		return 0, false
	}
}

// Sink receives player intents; *engine.Game implements it
type Sink interface {
	SetMoveIntent(player int, dir components.Direction, active bool) error
	FireRequested(player int) error
}
