package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/twin-shooter/components"
)

type moveCall struct {
	player int
	dir    components.Direction
	active bool
}

type fakeSink struct {
	moves []moveCall
	fires []int
}

func (s *fakeSink) SetMoveIntent(player int, dir components.Direction, active bool) error {
	s.moves = append(s.moves, moveCall{player, dir, active})
	return nil
}

func (s *fakeSink) FireRequested(player int) error {
	s.fires = append(s.fires, player)
	return nil
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newAdapter() (*TerminalAdapter, *fakeSink, *fakeClock) {
	sink := &fakeSink{}
	clock := &fakeClock{t: time.Unix(1000, 0)}
	a := NewTerminalAdapter(sink, nil, 500*time.Millisecond)
	a.SetClock(clock.now)
	return a, sink, clock
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDefaultBindings(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want KeyEntry
	}{
		{"left arrow", key(tcell.KeyLeft), KeyEntry{ActionMoveLeft, 0}},
		{"right arrow", key(tcell.KeyRight), KeyEntry{ActionMoveRight, 0}},
		{"enter", key(tcell.KeyEnter), KeyEntry{ActionFire, 0}},
		{"a", runeKey('a'), KeyEntry{ActionMoveLeft, 1}},
		{"upper D", runeKey('D'), KeyEntry{ActionMoveRight, 1}},
		{"space", runeKey(' '), KeyEntry{ActionFire, 1}},
		{"escape", key(tcell.KeyEscape), KeyEntry{ActionQuit, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := kt.Lookup(tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := kt.Lookup(runeKey('z'))
	assert.False(t, ok)
}

func TestHandleKeyQuit(t *testing.T) {
	a, sink, _ := newAdapter()

	quit, err := a.HandleKey(key(tcell.KeyCtrlC))
	require.NoError(t, err)
	assert.True(t, quit)
	assert.Empty(t, sink.moves)
}

func TestMoveHeldUntilTimeout(t *testing.T) {
	a, sink, clock := newAdapter()

	_, err := a.HandleKey(key(tcell.KeyLeft))
	require.NoError(t, err)
	assert.Equal(t, []moveCall{{0, components.DirectionLeft, true}}, sink.moves)

	// Auto-repeat keeps the key alive
	clock.advance(300 * time.Millisecond)
	_, _ = a.HandleKey(key(tcell.KeyLeft))
	clock.advance(300 * time.Millisecond)
	require.NoError(t, a.Update())
	assert.True(t, a.Held(0, components.DirectionLeft))

	clock.advance(250 * time.Millisecond)
	require.NoError(t, a.Update())
	assert.False(t, a.Held(0, components.DirectionLeft))
	assert.Equal(t, moveCall{0, components.DirectionLeft, false}, sink.moves[len(sink.moves)-1])
}

func TestOppositeDirectionReleases(t *testing.T) {
	a, sink, _ := newAdapter()

	_, _ = a.HandleKey(runeKey('a'))
	_, _ = a.HandleKey(runeKey('d'))

	assert.Equal(t, []moveCall{
		{1, components.DirectionLeft, true},
		{1, components.DirectionLeft, false},
		{1, components.DirectionRight, true},
	}, sink.moves)
	assert.False(t, a.Held(1, components.DirectionLeft))
	assert.True(t, a.Held(1, components.DirectionRight))
}

func TestPlayersHoldIndependently(t *testing.T) {
	a, _, _ := newAdapter()

	_, _ = a.HandleKey(key(tcell.KeyRight))
	_, _ = a.HandleKey(runeKey('a'))

	assert.True(t, a.Held(0, components.DirectionRight))
	assert.True(t, a.Held(1, components.DirectionLeft))
}

func TestFireAutoRepeatIgnored(t *testing.T) {
	a, sink, clock := newAdapter()

	_, _ = a.HandleKey(key(tcell.KeyEnter))
	clock.advance(30 * time.Millisecond)
	_, _ = a.HandleKey(key(tcell.KeyEnter))
	clock.advance(30 * time.Millisecond)
	_, _ = a.HandleKey(key(tcell.KeyEnter))
	assert.Equal(t, []int{0}, sink.fires)

	// Other player's fire is tracked separately
	_, _ = a.HandleKey(runeKey('w'))
	assert.Equal(t, []int{0, 1}, sink.fires)

	clock.advance(200 * time.Millisecond)
	_, _ = a.HandleKey(key(tcell.KeyUp))
	assert.Equal(t, []int{0, 1, 0}, sink.fires)
}

func TestUnboundKeyIgnored(t *testing.T) {
	a, sink, _ := newAdapter()

	quit, err := a.HandleKey(runeKey('q'))
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Empty(t, sink.moves)
	assert.Empty(t, sink.fires)
}

func TestActionStrings(t *testing.T) {
	assert.Equal(t, "fire", ActionFire.String())
	assert.Equal(t, "none", ActionType(99).String())

	dir, ok := ActionMoveRight.Direction()
	assert.True(t, ok)
	assert.Equal(t, components.DirectionRight, dir)
	_, ok = ActionFire.Direction()
	assert.False(t, ok)
}
