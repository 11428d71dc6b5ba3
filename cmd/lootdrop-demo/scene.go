package main

import (
	"github.com/plus3/lootdrop/lootbox"
)

// planeScene is a stand-in for the external rendering/tracking engine: a
// side-on view of a flat ground plane at Y=0. Screen X maps to world X,
// screen Y maps to height above the ground line. Clicks above the horizon
// resolve no surface, which is how the demo reaches the "unable to place"
// path.
type planeScene struct {
	store *lootbox.Store

	pixelsPerMeter float64
	groundScreenY  float64
	horizonScreenY float64
	worldWidth     float64

	// crateHalfMeters is the unscaled half size of a crate sprite.
	crateHalfMeters float64

	anchor lootbox.Transform
}

func newPlaneScene(store *lootbox.Store, screenW, screenH int) *planeScene {
	return &planeScene{
		store:           store,
		pixelsPerMeter:  100,
		groundScreenY:   float64(screenH) - 80,
		horizonScreenY:  120,
		worldWidth:      float64(screenW) / 100,
		crateHalfMeters: 0.12,
		anchor:          lootbox.NewTransform(lootbox.Vec3{}),
	}
}

func (s *planeScene) toScreen(world lootbox.Vec3) (float64, float64) {
	return world.X * s.pixelsPerMeter, s.groundScreenY - world.Y*s.pixelsPerMeter
}

func (s *planeScene) crateHalfPixels(e *lootbox.Entity) float64 {
	return s.crateHalfMeters * e.Transform.Scale.X * s.pixelsPerMeter
}

// CastRay hit-tests crate sprites front to back, then the ground plane.
func (s *planeScene) CastRay(pt lootbox.Point2) []lootbox.Hit {
	var hits []lootbox.Hit

	for id, e := range s.store.Crates() {
		cx, cy := s.toScreen(e.Transform.Position)
		half := s.crateHalfPixels(e)
		if pt.X >= cx-half && pt.X <= cx+half && pt.Y >= cy-half && pt.Y <= cy+half {
			hits = append(hits, lootbox.Hit{
				Entity:   id,
				World:    e.Transform.Position,
				Distance: 1,
			})
		}
	}

	if pt.Y >= s.horizonScreenY {
		x := pt.X / s.pixelsPerMeter
		if x >= 0 && x <= s.worldWidth {
			hits = append(hits, lootbox.Hit{
				World:    lootbox.Vec3{X: x},
				Distance: 2,
			})
		}
	}

	return hits
}

func (s *planeScene) AnchorFrame() lootbox.Transform {
	return s.anchor
}

// ToAnchorSpace is the identity here: the demo anchor sits at the scene
// origin.
func (s *planeScene) ToAnchorSpace(world lootbox.Vec3) lootbox.Vec3 {
	return world
}

// dropSystem is the demo's stand-in for the external physics engine: spawned
// crates fall from their drop offset and settle on the ground plane.
type dropSystem struct {
	store    *lootbox.Store
	velocity map[lootbox.EntityID]float64
}

func newDropSystem(store *lootbox.Store) *dropSystem {
	return &dropSystem{
		store:    store,
		velocity: make(map[lootbox.EntityID]float64),
	}
}

const gravity = 9.8

func (s *dropSystem) Execute(frame *lootbox.Frame) {
	for id, e := range s.store.Crates() {
		if e.Physics == nil || !e.Physics.Dynamic {
			continue
		}
		if e.Transform.Position.Y <= 0 {
			delete(s.velocity, id)
			continue
		}
		v := s.velocity[id] - gravity*frame.DeltaTime
		e.Transform.Position.Y += v * frame.DeltaTime
		if e.Transform.Position.Y <= 0 {
			e.Transform.Position.Y = 0
			delete(s.velocity, id)
		} else {
			s.velocity[id] = v
		}
	}
}
