package lootbox_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/lootdrop/lootbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPicker(t *testing.T) *lootbox.Picker {
	t.Helper()
	picker, err := lootbox.NewPicker(
		lootbox.Catalog{
			{ID: "gem", Name: "Gem"},
			{ID: "coin", Name: "Coin"},
		},
		rand.New(rand.NewPCG(1, 2)),
	)
	require.NoError(t, err)
	return picker
}

// crateScene returns every live crate of the store as a hit, nearest-first
// by spawn order, preceded by optional leading hits.
func crateScene(store *lootbox.Store, leading ...lootbox.Hit) *fakeScene {
	return &fakeScene{
		CastFn: func(pt lootbox.Point2) []lootbox.Hit {
			hits := append([]lootbox.Hit{}, leading...)
			dist := float64(len(hits)) + 1
			for id, e := range store.Crates() {
				hits = append(hits, lootbox.Hit{Entity: id, World: e.Transform.Position, Distance: dist})
				dist++
			}
			return hits
		},
	}
}

func TestHandleTapFiveTapScenario(t *testing.T) {
	store := lootbox.NewStore()
	clock := lootbox.NewManualClock(t0)
	handler := &lootbox.TapHandler{
		Scene:   crateScene(store),
		Store:   store,
		Rewards: testPicker(t),
		Clock:   clock,
	}

	e := store.Spawn(crateTemplate(5), lootbox.Vec3{})

	for i := 1; i <= 4; i++ {
		_, opened := handler.HandleTap(lootbox.Point2{})
		assert.False(t, opened, "tap %d must not open the crate", i)
		assert.Equal(t, i, e.Lootbox.TapsReceived)
	}

	reward, opened := handler.HandleTap(lootbox.Point2{})
	assert.True(t, opened)
	assert.NotEmpty(t, reward.ID)

	_, live := store.Get(e.ID)
	assert.False(t, live)
	assert.Equal(t, 0, store.CrateCount())
}

func TestHandleTapEmptySpace(t *testing.T) {
	store := lootbox.NewStore()
	handler := &lootbox.TapHandler{
		Scene:   &fakeScene{},
		Store:   store,
		Rewards: testPicker(t),
	}

	e := store.Spawn(crateTemplate(5), lootbox.Vec3{})

	_, opened := handler.HandleTap(lootbox.Point2{X: 5, Y: 5})

	assert.False(t, opened)
	assert.Equal(t, 0, e.Lootbox.TapsReceived)
	assert.True(t, e.Lootbox.LastUpdate.IsZero())
}

func TestHandleTapSkipsNonCrateHits(t *testing.T) {
	store := lootbox.NewStore()
	plain := store.Spawn(&lootbox.Template{Collision: &lootbox.CollisionShape{}}, lootbox.Vec3{})

	// Static geometry and a plain entity sit in front of the crate.
	scene := crateScene(store,
		lootbox.Hit{Entity: 0, Distance: 0.1},
		lootbox.Hit{Entity: plain.ID, Distance: 0.2},
	)
	handler := &lootbox.TapHandler{Scene: scene, Store: store, Rewards: testPicker(t)}

	crate := store.Spawn(crateTemplate(5), lootbox.Vec3{})

	_, opened := handler.HandleTap(lootbox.Point2{})

	assert.False(t, opened)
	assert.Equal(t, 1, crate.Lootbox.TapsReceived)
}

func TestHandleTapUpdatesTimestamp(t *testing.T) {
	store := lootbox.NewStore()
	clock := lootbox.NewManualClock(t0)
	handler := &lootbox.TapHandler{
		Scene:   crateScene(store),
		Store:   store,
		Rewards: testPicker(t),
		Clock:   clock,
	}

	e := store.Spawn(crateTemplate(5), lootbox.Vec3{})

	handler.HandleTap(lootbox.Point2{})
	first := e.Lootbox.LastUpdate

	clock.Advance(100 * time.Millisecond)
	handler.HandleTap(lootbox.Point2{})

	assert.Equal(t, t0, first)
	assert.Equal(t, t0.Add(100*time.Millisecond), e.Lootbox.LastUpdate)
}

func TestTapSystemDrainsQueueInOrder(t *testing.T) {
	store := lootbox.NewStore()
	queue := &lootbox.TapQueue{}
	handler := &lootbox.TapHandler{
		Scene:   crateScene(store),
		Store:   store,
		Rewards: testPicker(t),
		Clock:   lootbox.NewManualClock(t0),
	}

	var opened []lootbox.Reward
	system := &lootbox.TapSystem{
		Queue:   queue,
		Handler: handler,
		OnOpen:  func(r lootbox.Reward) { opened = append(opened, r) },
	}

	store.Spawn(crateTemplate(3), lootbox.Vec3{})

	queue.Push(lootbox.Point2{})
	queue.Push(lootbox.Point2{})
	queue.Push(lootbox.Point2{})
	require.Equal(t, 3, queue.Len())

	system.Execute(&lootbox.Frame{DeltaTime: 1.0 / 60.0})

	// Third tap crossed the threshold; exactly one reward was produced.
	assert.Len(t, opened, 1)
	assert.Equal(t, 0, queue.Len())
	assert.Equal(t, 0, store.CrateCount())

	// An empty queue is a no-op.
	system.Execute(&lootbox.Frame{DeltaTime: 1.0 / 60.0})
	assert.Len(t, opened, 1)
}
