// Package engine owns the authoritative game state and drives one simulation tick at a time.
//
// Event System Architecture
//
// Two queues connect the engine to its frontends:
//   - InputQueue carries key-derived intents into the engine. Frontends push at any time;
//     Game.Tick drains it once, before any system runs, so a tick never sees input change mid-way.
//   - EventQueue carries game events out of the engine (session started, enemy destroyed,
//     game over). Frontends consume it after each tick to show banners and write logs.
//
// Neither queue blocks. Both are fixed-size rings that overwrite the oldest entry when full.
//
// Event Flow Pattern:
//  1. Input adapter: game.FireRequested(0)
//  2. Game.Tick drains the InputQueue, runs systems, pushes GameEvents
//  3. Frontend: for _, ev := range game.ConsumeEvents() { ... }
package engine

import (
	"github.com/lixenwraith/twin-shooter/constants"
)

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStarted is pushed when a new session begins, at construction and after each reset.
	//
	// Payload: SessionPayload
	EventSessionStarted EventType = iota

	// EventEnemyDestroyed is pushed when a bullet removes an enemy.
	//
	// Payload: ScorePayload (score after the increment)
	EventEnemyDestroyed

	// EventGameOver is pushed when an enemy touches a player, right before the reset.
	// It replaces a blocking "game over" dialog: frontends show the final score without stopping the loop.
	//
	// Payload: GameOverPayload
	EventGameOver
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventSessionStarted:
		return "SessionStarted"
	case EventEnemyDestroyed:
		return "EnemyDestroyed"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single game event with the tick it was created on
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64 // Session tick when the event was created
}

// SessionPayload identifies a session
type SessionPayload struct {
	SessionID string
	Session   int
}

// ScorePayload carries the running score
type ScorePayload struct {
	SessionID string
	Score     int
	Player    int // Owner of the bullet
}

// GameOverPayload carries the final state of a finished session
type GameOverPayload struct {
	SessionID string
	Session   int
	Score     int
	Player    int // Player hit by the enemy
	Ticks     int64
}

// EventQueue is the outbound ring buffer for game events
type EventQueue struct {
	ring *ring[GameEvent]
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{ring: newRing[GameEvent](constants.EventQueueSize)}
}

// Push adds an event, overwriting the oldest one if the queue is full
func (eq *EventQueue) Push(event GameEvent) {
	eq.ring.push(event)
}

// Consume returns all pending events in FIFO order and marks them consumed
func (eq *EventQueue) Consume() []GameEvent {
	return eq.ring.consume()
}

// Peek returns pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	return eq.ring.peek()
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return eq.ring.len()
}
