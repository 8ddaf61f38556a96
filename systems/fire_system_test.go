package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/twin-shooter/config"
)

func TestTryFireBulletPosition(t *testing.T) {
	state, _ := newTestState(t)
	rules := state.Rules
	p := &state.Players[0]
	p.X = 100

	require.True(t, TryFireBullet(p, rules))
	require.Len(t, p.Bullets, 1)

	b := p.Bullets[0]
	assert.Equal(t, 100+rules.PlayerWidth/2-rules.BulletWidth/2, b.X)
	assert.Equal(t, p.Y, b.Y)
	assert.Equal(t, rules.BulletWidth, b.Width)
	assert.Equal(t, rules.BulletHeight, b.Height)
	assert.Equal(t, p.Color, b.Color, "bullet inherits owner color")
}

func TestTryFireBulletCap(t *testing.T) {
	state, _ := newTestState(t)
	p := &state.Players[1]

	for i := 0; i < 5; i++ {
		assert.True(t, TryFireBullet(p, state.Rules), "fire %d", i+1)
	}
	assert.Len(t, p.Bullets, 5)

	assert.False(t, TryFireBullet(p, state.Rules), "sixth fire is a no-op")
	assert.Len(t, p.Bullets, 5)
}

func TestTryFireBulletZeroCap(t *testing.T) {
	state, _ := newTestState(t)
	rules := config.DefaultRules()
	rules.MaxBulletsPerPlayer = 0

	assert.False(t, TryFireBullet(&state.Players[0], rules))
	assert.Empty(t, state.Players[0].Bullets)
}

func TestFireSystemDrainsRequestsInOrder(t *testing.T) {
	state, _ := newTestState(t)
	state.PendingFires = []int{1, 0, 1}

	NewFireSystem().Update(state)

	assert.Len(t, state.Players[0].Bullets, 1)
	assert.Len(t, state.Players[1].Bullets, 2)
	assert.Empty(t, state.PendingFires)

	// Requests are consumed: a second update fires nothing
	NewFireSystem().Update(state)
	assert.Len(t, state.Players[1].Bullets, 2)
}
