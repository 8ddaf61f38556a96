package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/config"
	"github.com/lixenwraith/twin-shooter/constants"
)

var (
	// ErrFieldTooSmall is returned when the field cannot hold a player or an enemy
	ErrFieldTooSmall = errors.New("field too small")

	// ErrInvalidPlayer is returned for a player index outside [0, PlayerCount)
	ErrInvalidPlayer = errors.New("invalid player index")
	// ErrInputQueueFull is returned when input arrives faster than ticks drain it
	ErrInputQueueFull = errors.New("input queue full")
)

// Phase is the session state
type Phase uint8

const (
	PhaseRunning Phase = iota
	// PhaseOver is transient: the controller resets the session within the same tick
	PhaseOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Field is the play area size in field units, owned by the frontend
type Field struct {
	Width, Height float64
}

// checkField rejects fields that cannot hold the largest sprite
func checkField(rules config.Rules, f Field) error {
	minWidth := max(rules.PlayerWidth, rules.EnemySize, rules.BulletWidth)
	minHeight := rules.PlayerHeight
	if f.Width < minWidth || f.Height < minHeight {
		return fmt.Errorf("%w: %.0fx%.0f, need at least %.0fx%.0f", ErrFieldTooSmall, f.Width, f.Height, minWidth, minHeight)
	}
	return nil
}

// GameState is the authoritative entity collections and score of one session.
// It is mutated only inside Game.Tick (or Reset), on the loop goroutine.
type GameState struct {
	Rules config.Rules
	Field Field

	Players [constants.PlayerCount]components.Player
	Enemies []components.Enemy
	Score   int

	Phase     Phase
	Session   int    // Sequence number, starts at 1
	SessionID string // Unique id for logs and events
	Tick      int64  // Ticks since the session started

	// PendingFires lists players with a fire request received since the last tick, in arrival order
	PendingFires []int

	// HitPlayer is the player that ended the session, -1 while running
	HitPlayer int

	// Rand drives enemy placement
	Rand *rand.Rand

	events *EventQueue
}

// NewGameState creates a running session. events may be nil when nobody listens.
func NewGameState(rules config.Rules, field Field, rng *rand.Rand, events *EventQueue) *GameState {
	s := &GameState{
		Rules:  rules,
		Field:  field,
		Rand:   rng,
		events: events,
	}
	s.Reset()
	return s
}

// Reset replaces every entity collection with its session-initial value and starts a new session
func (s *GameState) Reset() {
	s.Players = s.newPlayers()
	s.Enemies = make([]components.Enemy, 0, s.Rules.MaxEnemies)
	s.Score = 0
	s.Phase = PhaseRunning
	s.Session++
	s.SessionID = uuid.NewString()
	s.Tick = 0
	s.PendingFires = nil
	s.HitPlayer = -1
}

// newPlayers places player one at a quarter of the width and player two at three quarters
func (s *GameState) newPlayers() [constants.PlayerCount]components.Player {
	var players [constants.PlayerCount]components.Player

	w, h := s.Rules.PlayerWidth, s.Rules.PlayerHeight
	for i := range players {
		centre := s.Field.Width * float64(2*i+1) / 4
		players[i] = components.Player{
			X:       clamp(centre-w/2, 0, s.maxPlayerX()),
			Y:       s.Field.Height - h,
			Width:   w,
			Height:  h,
			Color:   components.PlayerColor(i),
			Bullets: make([]components.Bullet, 0, s.Rules.MaxBulletsPerPlayer),
		}
	}
	return players
}

// maxPlayerX is the rightmost valid player x
func (s *GameState) maxPlayerX() float64 {
	return max(s.Field.Width-s.Rules.PlayerWidth, 0)
}

// SetField changes the field size. Player x is clamped to the new bounds and
// players are re-anchored to the bottom edge when the height changes.
func (s *GameState) SetField(f Field) {
	heightChanged := f.Height != s.Field.Height
	s.Field = f
	hi := s.maxPlayerX()
	for i := range s.Players {
		s.Players[i].X = clamp(s.Players[i].X, 0, hi)
		if heightChanged {
			s.Players[i].Y = f.Height - s.Players[i].Height
		}
	}
}

// EndSession moves the session to PhaseOver; the controller resets it before the tick returns
func (s *GameState) EndSession(player int) {
	if s.Phase == PhaseOver {
		return
	}
	s.Phase = PhaseOver
	s.HitPlayer = player
}

// AddScore awards one enemy kill to player's bullet
func (s *GameState) AddScore(player int) {
	s.Score += s.Rules.ScoreIncrement
	s.PushEvent(EventEnemyDestroyed, ScorePayload{
		SessionID: s.SessionID,
		Score:     s.Score,
		Player:    player,
	})
}

// PushEvent stamps the current tick and pushes to the outbound queue
func (s *GameState) PushEvent(t EventType, payload any) {
	if s.events == nil {
		return
	}
	s.events.Push(GameEvent{Type: t, Payload: payload, Tick: s.Tick})
}

// Snapshot returns a deep copy for rendering
func (s *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Field:     s.Field,
		Enemies:   make([]components.Enemy, len(s.Enemies)),
		Score:     s.Score,
		Session:   s.Session,
		SessionID: s.SessionID,
		Tick:      s.Tick,
	}
	for i := range s.Players {
		snap.Players[i] = s.Players[i].Clone()
	}
	copy(snap.Enemies, s.Enemies)
	return snap
}

// Snapshot is an immutable copy of the state handed to renderers
type Snapshot struct {
	Field     Field
	Players   [constants.PlayerCount]components.Player
	Enemies   []components.Enemy
	Score     int
	Session   int
	SessionID string
	Tick      int64
}

// BulletCount returns the total live bullets across players
func (s Snapshot) BulletCount() int {
	n := 0
	for i := range s.Players {
		n += len(s.Players[i].Bullets)
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
