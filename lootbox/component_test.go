package lootbox_test

import (
	"testing"
	"time"

	"github.com/plus3/lootdrop/lootbox"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestApplyTap(t *testing.T) {
	state := lootbox.LootboxState{RequiredTaps: 5}

	next := lootbox.ApplyTap(state, t0)

	assert.Equal(t, 1, next.TapsReceived)
	assert.Equal(t, t0, next.LastUpdate)
	assert.False(t, next.Opened())

	// The input state is untouched; ApplyTap returns a new value.
	assert.Equal(t, 0, state.TapsReceived)
	assert.True(t, state.LastUpdate.IsZero())
}

func TestApplyTapReachesThreshold(t *testing.T) {
	state := lootbox.LootboxState{TapsReceived: 4, RequiredTaps: 5, LastUpdate: t0}

	next := lootbox.ApplyTap(state, t0.Add(time.Second))

	assert.Equal(t, 5, next.TapsReceived)
	assert.True(t, next.Opened())
}

func TestApplyDecay(t *testing.T) {
	const idle = 250 * time.Millisecond

	t.Run("fires after idle threshold", func(t *testing.T) {
		state := lootbox.LootboxState{TapsReceived: 3, RequiredTaps: 5, LastUpdate: t0}
		now := t0.Add(idle + time.Millisecond)

		next, fired := lootbox.ApplyDecay(state, now, idle)

		assert.True(t, fired)
		assert.Equal(t, 2, next.TapsReceived)
		assert.Equal(t, now, next.LastUpdate)
	})

	t.Run("no-op within idle threshold", func(t *testing.T) {
		state := lootbox.LootboxState{TapsReceived: 3, RequiredTaps: 5, LastUpdate: t0}

		next, fired := lootbox.ApplyDecay(state, t0.Add(idle), idle)

		assert.False(t, fired)
		assert.Equal(t, state, next)
	})

	t.Run("never fires at zero taps", func(t *testing.T) {
		state := lootbox.LootboxState{TapsReceived: 0, RequiredTaps: 5, LastUpdate: t0}

		next, fired := lootbox.ApplyDecay(state, t0.Add(time.Hour), idle)

		assert.False(t, fired)
		assert.Equal(t, 0, next.TapsReceived)
	})

	t.Run("never fires before first mutation", func(t *testing.T) {
		state := lootbox.LootboxState{TapsReceived: 1, RequiredTaps: 5}

		next, fired := lootbox.ApplyDecay(state, t0, idle)

		assert.False(t, fired)
		assert.Equal(t, state, next)
	})

	t.Run("fires once per idle period", func(t *testing.T) {
		state := lootbox.LootboxState{TapsReceived: 3, RequiredTaps: 5, LastUpdate: t0}
		now := t0.Add(idle + time.Millisecond)

		next, fired := lootbox.ApplyDecay(state, now, idle)
		assert.True(t, fired)

		// LastUpdate was refreshed, so an immediate second check is a no-op.
		next2, fired2 := lootbox.ApplyDecay(next, now, idle)
		assert.False(t, fired2)
		assert.Equal(t, 2, next2.TapsReceived)
	})
}
