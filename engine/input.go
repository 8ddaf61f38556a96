package engine

import (
	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/constants"
)

// InputKind discriminates input events
type InputKind uint8

const (
	// InputMove sets or clears a held move intent
	InputMove InputKind = iota
	// InputFire is an edge-triggered fire request, one per key-down
	InputFire
)

// InputEvent is a translated key event addressed to one player
type InputEvent struct {
	Kind      InputKind
	Player    int
	Direction components.Direction // InputMove only
	Active    bool                 // InputMove only
}

// InputQueue is the single-consumer message queue between input adapters and the tick
type InputQueue struct {
	ring *ring[InputEvent]
}

// NewInputQueue creates an empty queue
func NewInputQueue() *InputQueue {
	return &InputQueue{ring: newRing[InputEvent](constants.EventQueueSize)}
}

// Push enqueues an input event and reports false when the queue is full; safe from any goroutine.
// Pending events are never overwritten so a queued move release cannot be lost.
func (q *InputQueue) Push(ev InputEvent) bool {
	return q.ring.tryPush(ev)
}

// Drain returns and removes all pending input events, oldest first
func (q *InputQueue) Drain() []InputEvent {
	return q.ring.consume()
}

// Len returns the number of pending input events
func (q *InputQueue) Len() int {
	return q.ring.len()
}
