package lootbox

// System represents a behavior executed once per frame by the Scheduler.
// Systems hold their own references to the Store and any other state they
// need between frames.
type System interface {
	Execute(frame *Frame)
}

// Frame carries per-tick context shared by all systems.
type Frame struct {
	// DeltaTime is the simulated time step in seconds.
	DeltaTime float64
}
