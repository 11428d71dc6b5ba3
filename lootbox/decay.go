package lootbox

import "time"

const (
	// DefaultIdleDecay is how long a crate must sit untouched before one tap
	// decays away.
	DefaultIdleDecay = 250 * time.Millisecond

	// DefaultScaleFactor is the per-tap visual growth applied uniformly to
	// all three spatial axes.
	DefaultScaleFactor = 0.05
)

// DecayScaleSystem runs once per frame over every live crate: it decays idle
// tap progress, then recomputes visual scale from the current tap count. The
// scale step runs every tick whether or not decay fired, so scale always
// reflects the tap count. The system has no terminal state; it simply stops
// seeing an entity once the Store releases it.
type DecayScaleSystem struct {
	Store *Store

	// Clock defaults to SystemClock when nil.
	Clock Clock

	// IdleDecay defaults to DefaultIdleDecay when zero or negative.
	IdleDecay time.Duration

	// ScaleFactor defaults to DefaultScaleFactor when zero.
	ScaleFactor float64
}

// Execute applies one decay-and-rescale pass to all live crates.
func (s *DecayScaleSystem) Execute(frame *Frame) {
	now := s.now()
	idle := s.idleDecay()
	factor := s.scaleFactor()

	for _, e := range s.Store.Crates() {
		next, _ := ApplyDecay(*e.Lootbox, now, idle)
		*e.Lootbox = next
		e.Transform.Scale = Splat(1 + factor*float64(next.TapsReceived))
	}
}

func (s *DecayScaleSystem) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now()
}

func (s *DecayScaleSystem) idleDecay() time.Duration {
	if s.IdleDecay > 0 {
		return s.IdleDecay
	}
	return DefaultIdleDecay
}

func (s *DecayScaleSystem) scaleFactor() float64 {
	if s.ScaleFactor != 0 {
		return s.ScaleFactor
	}
	return DefaultScaleFactor
}
