package lootbox

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// Store owns every placed entity. It assigns identity, tracks the anchor
// parent relationship, and maintains an explicit ordered index of entities
// carrying LootboxState so per-frame iteration stays bounded and
// deterministic.
//
// The Store is not safe for concurrent use. All mutation is expected to
// happen on the single goroutine driving the frame scheduler.
type Store struct {
	anchor   *Anchor
	nextID   EntityID
	entities []*Entity
	byID     *intmap.Map[EntityID, int]

	// crates lists live loot-crate entities in spawn order.
	crates []EntityID
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{
		byID: intmap.New[EntityID, int](64),
	}
}

// SetAnchor sets the active placement anchor. Entities spawned afterwards are
// parented to it; already-spawned entities keep their original anchor.
func (s *Store) SetAnchor(a *Anchor) {
	s.anchor = a
}

// Anchor returns the active placement anchor, or nil if none has been set.
func (s *Store) Anchor() *Anchor {
	return s.anchor
}

// Spawn deep-clones the template's components into a new entity at the given
// anchor-relative position, parents it to the active anchor, and registers
// it. Spawn never fails under normal memory conditions.
func (s *Store) Spawn(t *Template, position Vec3) *Entity {
	e := t.instantiate()
	s.nextID++
	e.ID = s.nextID
	e.Anchor = s.anchor
	e.Transform.Position = position

	s.byID.Put(e.ID, len(s.entities))
	s.entities = append(s.entities, e)
	if e.Lootbox != nil {
		s.crates = append(s.crates, e.ID)
	}
	return e
}

// Destroy detaches the entity from its anchor and releases it. Removal is
// visible to iteration immediately, so a frame system never touches a
// destroyed entity. Returns false if the ID is unknown or already destroyed.
func (s *Store) Destroy(id EntityID) bool {
	idx, ok := s.byID.Get(id)
	if !ok {
		return false
	}
	e := s.entities[idx]

	last := len(s.entities) - 1
	moved := s.entities[last]
	s.entities[idx] = moved
	s.entities[last] = nil
	s.entities = s.entities[:last]
	if moved.ID != id {
		s.byID.Put(moved.ID, idx)
	}
	s.byID.Del(id)

	if e.Lootbox != nil {
		for i, cid := range s.crates {
			if cid == id {
				s.crates = append(s.crates[:i], s.crates[i+1:]...)
				break
			}
		}
	}

	e.Anchor = nil
	return true
}

// Get returns the live entity with the given ID.
func (s *Store) Get(id EntityID) (*Entity, bool) {
	idx, ok := s.byID.Get(id)
	if !ok {
		return nil, false
	}
	return s.entities[idx], true
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.entities)
}

// CrateCount returns the number of live entities carrying LootboxState.
func (s *Store) CrateCount() int {
	return len(s.crates)
}

// Crates iterates live loot-crate entities in spawn order. The iteration
// walks a snapshot of the index, so destroying entities mid-iteration is
// safe: destroyed entities simply stop being yielded.
func (s *Store) Crates() iter.Seq2[EntityID, *Entity] {
	return func(yield func(EntityID, *Entity) bool) {
		snapshot := make([]EntityID, len(s.crates))
		copy(snapshot, s.crates)
		for _, id := range snapshot {
			idx, ok := s.byID.Get(id)
			if !ok {
				continue
			}
			if !yield(id, s.entities[idx]) {
				return
			}
		}
	}
}
