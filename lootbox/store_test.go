package lootbox_test

import (
	"testing"

	"github.com/plus3/lootdrop/lootbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnAssignsIdentity(t *testing.T) {
	store := lootbox.NewStore()
	tmpl := crateTemplate(5)

	a := store.Spawn(tmpl, lootbox.Vec3{X: 1})
	b := store.Spawn(tmpl, lootbox.Vec3{X: 2})

	assert.NotEqual(t, lootbox.EntityID(0), a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 2, store.CrateCount())
}

func TestSpawnDeepClonesTemplate(t *testing.T) {
	store := lootbox.NewStore()
	tmpl := crateTemplate(5)

	a := store.Spawn(tmpl, lootbox.Vec3{})
	b := store.Spawn(tmpl, lootbox.Vec3{})

	a.Lootbox.TapsReceived = 3
	a.Physics.Mass = 99

	// Neither the template nor sibling instances observe the mutation.
	assert.Equal(t, 0, tmpl.Lootbox.TapsReceived)
	assert.Equal(t, 0.5, tmpl.Physics.Mass)
	assert.Equal(t, 0, b.Lootbox.TapsReceived)
	assert.Equal(t, 0.5, b.Physics.Mass)
}

func TestSpawnParentsToActiveAnchor(t *testing.T) {
	store := lootbox.NewStore()
	anchor := &lootbox.Anchor{Name: "floor"}
	store.SetAnchor(anchor)

	e := store.Spawn(crateTemplate(5), lootbox.Vec3{X: 1, Y: 2, Z: 3})

	assert.Same(t, anchor, e.Anchor)
	assert.Equal(t, lootbox.Vec3{X: 1, Y: 2, Z: 3}, e.Transform.Position)
	assert.Equal(t, lootbox.Splat(1), e.Transform.Scale)
}

func TestDestroy(t *testing.T) {
	store := lootbox.NewStore()
	tmpl := crateTemplate(5)

	a := store.Spawn(tmpl, lootbox.Vec3{})
	b := store.Spawn(tmpl, lootbox.Vec3{})

	require.True(t, store.Destroy(a.ID))

	_, live := store.Get(a.ID)
	assert.False(t, live)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 1, store.CrateCount())
	assert.Nil(t, a.Anchor)

	_, live = store.Get(b.ID)
	assert.True(t, live)

	// Second destroy of the same ID is rejected.
	assert.False(t, store.Destroy(a.ID))
}

func TestCratesIterationOrder(t *testing.T) {
	store := lootbox.NewStore()
	tmpl := crateTemplate(5)

	a := store.Spawn(tmpl, lootbox.Vec3{})
	b := store.Spawn(tmpl, lootbox.Vec3{})
	c := store.Spawn(tmpl, lootbox.Vec3{})

	store.Destroy(b.ID)

	var order []lootbox.EntityID
	for id := range store.Crates() {
		order = append(order, id)
	}

	// Spawn order survives removal from the middle.
	assert.Equal(t, []lootbox.EntityID{a.ID, c.ID}, order)
}

func TestCratesIndexExcludesPlainEntities(t *testing.T) {
	store := lootbox.NewStore()

	plain := &lootbox.Template{Collision: &lootbox.CollisionShape{HalfExtents: lootbox.Splat(1)}}
	store.Spawn(plain, lootbox.Vec3{})
	store.Spawn(crateTemplate(5), lootbox.Vec3{})

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 1, store.CrateCount())
}

func TestDestroyDuringCrateIteration(t *testing.T) {
	store := lootbox.NewStore()
	tmpl := crateTemplate(5)

	a := store.Spawn(tmpl, lootbox.Vec3{})
	b := store.Spawn(tmpl, lootbox.Vec3{})
	c := store.Spawn(tmpl, lootbox.Vec3{})

	var seen []lootbox.EntityID
	for id := range store.Crates() {
		seen = append(seen, id)
		if id == a.ID {
			store.Destroy(b.ID)
		}
	}

	// b was destroyed before being yielded, c is yielded exactly once.
	assert.Equal(t, []lootbox.EntityID{a.ID, c.ID}, seen)
}
