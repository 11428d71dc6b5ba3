package lootbox

import "time"

// LootboxState tracks tap progress for a single crate. A zero LastUpdate
// means the state has never been mutated.
type LootboxState struct {
	TapsReceived int
	RequiredTaps int
	LastUpdate   time.Time
}

// Opened reports whether enough taps have accumulated to open the crate.
func (s LootboxState) Opened() bool {
	return s.TapsReceived >= s.RequiredTaps
}

// ApplyTap returns the state after registering one tap at the given time.
// The caller is responsible for persisting the result.
func ApplyTap(s LootboxState, now time.Time) LootboxState {
	s.TapsReceived++
	s.LastUpdate = now
	return s
}

// ApplyDecay returns the state after one decay check at the given time and
// reports whether the decay fired. Decay removes one tap when the state has
// been idle longer than the idle threshold; it never fires when the count is
// already zero or the state has never been mutated.
func ApplyDecay(s LootboxState, now time.Time, idle time.Duration) (LootboxState, bool) {
	if s.TapsReceived <= 0 || s.LastUpdate.IsZero() {
		return s, false
	}
	if now.Sub(s.LastUpdate) <= idle {
		return s, false
	}
	s.TapsReceived--
	s.LastUpdate = now
	return s, true
}
