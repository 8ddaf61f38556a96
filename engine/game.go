package engine

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/lixenwraith/twin-shooter/components"
	"github.com/lixenwraith/twin-shooter/config"
	"github.com/lixenwraith/twin-shooter/constants"
)

// Game is the game state controller: it owns the GameState, runs the systems once per Tick
// and turns a game over into an immediate reset.
//
// Tick, SetField, Reset and the read accessors belong to the loop goroutine.
// SetMoveIntent and FireRequested only enqueue and may be called from anywhere.
type Game struct {
	state   *GameState
	systems []System

	input  *InputQueue
	events *EventQueue

	// Render frame: entities as of PriorityRender, score as of the end of the tick
	frame Snapshot

	logger *slog.Logger
	rng    *rand.Rand
}

// Option configures a Game at construction
type Option func(*Game)

// WithLogger sets the structured logger, default discards
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithRand sets the random source for enemy placement, default is clock seeded
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// NewGame creates a controller for a field of the given size with no systems registered
func NewGame(rules config.Rules, width, height float64, opts ...Option) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	field := Field{Width: width, Height: height}
	if err := checkField(rules, field); err != nil {
		return nil, err
	}

	g := &Game{
		input:  NewInputQueue(),
		events: NewEventQueue(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.state = NewGameState(rules, field, g.rng, g.events)
	g.startSession()
	g.frame = g.state.Snapshot()

	return g, nil
}

// AddSystem registers a system; systems run in ascending priority, ties in registration order
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
}

// SetMoveIntent enqueues a held-state change for a player's move direction
func (g *Game) SetMoveIntent(player int, dir components.Direction, active bool) error {
	if err := validPlayer(player); err != nil {
		return err
	}
	if !g.input.Push(InputEvent{Kind: InputMove, Player: player, Direction: dir, Active: active}) {
		return ErrInputQueueFull
	}
	return nil
}

// FireRequested enqueues one fire command; call once per key-down, never per held tick
func (g *Game) FireRequested(player int) error {
	if err := validPlayer(player); err != nil {
		return err
	}
	if !g.input.Push(InputEvent{Kind: InputFire, Player: player}) {
		return ErrInputQueueFull
	}
	return nil
}

func validPlayer(player int) error {
	if player < 0 || player >= constants.PlayerCount {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}
	return nil
}

// SetField applies a new surface size from the frontend; effective from the next tick
func (g *Game) SetField(width, height float64) error {
	field := Field{Width: width, Height: height}
	if err := checkField(g.state.Rules, field); err != nil {
		return err
	}
	if field == g.state.Field {
		return nil
	}

	g.state.SetField(field)
	g.frame = g.state.Snapshot()
	g.logger.Debug("field resized", "width", width, "height", height)
	return nil
}

// Tick runs one synchronous simulation step
func (g *Game) Tick() {
	g.applyInput()
	g.state.Tick++

	captured := false
	for _, sys := range g.systems {
		if !captured && sys.Priority() >= constants.PriorityRender {
			g.frame = g.state.Snapshot()
			captured = true
		}

		sys.Update(g.state)

		// Whatever the rest of the tick would do to the old session is discarded
		if g.state.Phase == PhaseOver {
			g.finishSession()
			break
		}
	}

	if !captured {
		g.frame = g.state.Snapshot()
	}
	g.frame.Score = g.state.Score
}

// applyInput drains the input queue into intent flags and pending fire requests
func (g *Game) applyInput() {
	for _, ev := range g.input.Drain() {
		switch ev.Kind {
		case InputMove:
			g.state.Players[ev.Player].SetIntent(ev.Direction, ev.Active)
		case InputFire:
			g.state.PendingFires = append(g.state.PendingFires, ev.Player)
		}
	}
}

// finishSession reports the finished session and resets in place
func (g *Game) finishSession() {
	s := g.state
	payload := GameOverPayload{
		SessionID: s.SessionID,
		Session:   s.Session,
		Score:     s.Score,
		Player:    s.HitPlayer,
		Ticks:     s.Tick,
	}
	s.PushEvent(EventGameOver, payload)
	g.logger.Info("game over",
		"session", payload.Session,
		"session_id", payload.SessionID,
		"score", payload.Score,
		"player", payload.Player,
		"ticks", payload.Ticks,
	)

	g.resetSession()
}

// Reset discards the running session and starts a fresh one
func (g *Game) Reset() {
	g.resetSession()
	g.frame = g.state.Snapshot()
}

func (g *Game) resetSession() {
	// New players start with no move intent
	g.state.Reset()
	g.startSession()
}

func (g *Game) startSession() {
	g.state.PushEvent(EventSessionStarted, SessionPayload{
		SessionID: g.state.SessionID,
		Session:   g.state.Session,
	})
	g.logger.Info("session started", "session", g.state.Session, "session_id", g.state.SessionID)
}

// State returns the authoritative post-tick state; callers must not mutate it
func (g *Game) State() *GameState {
	return g.state
}

// Frame returns the render snapshot of the last tick
func (g *Game) Frame() Snapshot {
	return g.frame
}

// ConsumeEvents returns and clears the game events produced since the last call
func (g *Game) ConsumeEvents() []GameEvent {
	return g.events.Consume()
}

// PendingInput returns the number of queued, not yet applied input events
func (g *Game) PendingInput() int {
	return g.input.Len()
}
