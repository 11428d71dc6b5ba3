package lootbox

import "time"

// TapHandler resolves 2D taps against the scene and advances the state of
// the crate they land on.
type TapHandler struct {
	Scene   Scene
	Store   *Store
	Rewards *Picker

	// Clock defaults to SystemClock when nil.
	Clock Clock
}

// HandleTap casts a ray from the viewport point and applies one tap to the
// nearest hit entity carrying LootboxState. Taps on empty space or
// non-crate geometry are silent no-ops. When the tap crosses the crate's
// threshold the entity is destroyed and the drawn reward is returned with
// ok=true; otherwise ok is false.
//
// Each call performs at most one state mutation, one destruction, and one
// reward draw. Rapid successive taps are each processed independently; there
// is no debouncing.
func (h *TapHandler) HandleTap(pt Point2) (reward Reward, ok bool) {
	target := h.target(pt)
	if target == nil {
		return Reward{}, false
	}

	next := ApplyTap(*target.Lootbox, h.now())
	*target.Lootbox = next
	if !next.Opened() {
		return Reward{}, false
	}

	h.Store.Destroy(target.ID)
	return h.Rewards.Pick(), true
}

// target returns the nearest hit entity that carries LootboxState, or nil.
func (h *TapHandler) target(pt Point2) *Entity {
	for _, hit := range h.Scene.CastRay(pt) {
		if hit.Entity == 0 {
			continue
		}
		e, live := h.Store.Get(hit.Entity)
		if !live || e.Lootbox == nil {
			continue
		}
		return e
	}
	return nil
}

func (h *TapHandler) now() time.Time {
	if h.Clock != nil {
		return h.Clock.Now()
	}
	return time.Now()
}

// TapQueue buffers viewport taps delivered by the host between frames. Taps
// are pushed from the same goroutine that drives the scheduler, matching the
// single-threaded frame model.
type TapQueue struct {
	pending []Point2
}

// Push appends a tap to the queue.
func (q *TapQueue) Push(pt Point2) {
	q.pending = append(q.pending, pt)
}

// Len returns the number of buffered taps.
func (q *TapQueue) Len() int {
	return len(q.pending)
}

// drain returns the buffered taps in arrival order and resets the queue.
func (q *TapQueue) drain() []Point2 {
	taps := q.pending
	q.pending = nil
	return taps
}

// TapSystem drains the queue once per frame, before decay runs (taps are
// processed first within a frame; see the scheduler registration order).
// Rewards from opened crates are delivered to OnOpen.
type TapSystem struct {
	Queue   *TapQueue
	Handler *TapHandler

	// OnOpen receives each revealed reward. May be nil.
	OnOpen func(Reward)
}

// Execute processes every buffered tap in arrival order.
func (s *TapSystem) Execute(frame *Frame) {
	for _, pt := range s.Queue.drain() {
		if r, opened := s.Handler.HandleTap(pt); opened && s.OnOpen != nil {
			s.OnOpen(r)
		}
	}
}
