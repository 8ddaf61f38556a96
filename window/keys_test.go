package window

import (
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/twin-shooter/components"
)

type fakeKeys struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
}

func (k *fakeKeys) JustPressed(key ebiten.Key) bool  { return k.pressed[key] }
func (k *fakeKeys) JustReleased(key ebiten.Key) bool { return k.released[key] }

type recordingSink struct {
	moves []string
	fires []int
}

func (s *recordingSink) SetMoveIntent(player int, dir components.Direction, active bool) error {
	state := "up"
	if active {
		state = "down"
	}
	s.moves = append(s.moves, fmt.Sprintf("%d:%s:%s", player, dir, state))
	return nil
}

func (s *recordingSink) FireRequested(player int) error {
	s.fires = append(s.fires, player)
	return nil
}

func newTestAdapter(pressed, released []ebiten.Key) (*KeyAdapter, *recordingSink) {
	keys := &fakeKeys{pressed: map[ebiten.Key]bool{}, released: map[ebiten.Key]bool{}}
	for _, k := range pressed {
		keys.pressed[k] = true
	}
	for _, k := range released {
		keys.released[k] = true
	}
	sink := &recordingSink{}
	return &KeyAdapter{sink: sink, keys: keys, bindings: defaultBindings()}, sink
}

func TestPollMovePressAndRelease(t *testing.T) {
	a, sink := newTestAdapter([]ebiten.Key{ebiten.KeyArrowLeft}, []ebiten.Key{ebiten.KeyD})

	quit, err := a.Poll()
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, []string{
		fmt.Sprintf("0:%s:down", components.DirectionLeft),
		fmt.Sprintf("1:%s:up", components.DirectionRight),
	}, sink.moves)
}

func TestPollFireOnPressOnly(t *testing.T) {
	a, sink := newTestAdapter(
		[]ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyShiftRight},
		[]ebiten.Key{ebiten.KeyShiftLeft},
	)

	_, err := a.Poll()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, sink.fires)
}

func TestPollQuit(t *testing.T) {
	a, sink := newTestAdapter([]ebiten.Key{ebiten.KeyEscape}, nil)

	quit, err := a.Poll()
	require.NoError(t, err)
	assert.True(t, quit)
	assert.Empty(t, sink.moves)
}

func TestPollNoEdges(t *testing.T) {
	a, sink := newTestAdapter(nil, nil)

	quit, err := a.Poll()
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Empty(t, sink.moves)
	assert.Empty(t, sink.fires)
}
