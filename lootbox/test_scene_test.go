package lootbox_test

import (
	"github.com/plus3/lootdrop/lootbox"
)

// fakeScene is a canned Scene implementation. Hits are returned as-is unless
// CastFn is set; ToAnchorSpace applies a fixed translation so tests can
// verify anchor-relative conversion.
type fakeScene struct {
	Hits   []lootbox.Hit
	CastFn func(pt lootbox.Point2) []lootbox.Hit
	Offset lootbox.Vec3
	Frame  lootbox.Transform
}

func (s *fakeScene) CastRay(pt lootbox.Point2) []lootbox.Hit {
	if s.CastFn != nil {
		return s.CastFn(pt)
	}
	return s.Hits
}

func (s *fakeScene) AnchorFrame() lootbox.Transform {
	return s.Frame
}

func (s *fakeScene) ToAnchorSpace(world lootbox.Vec3) lootbox.Vec3 {
	return world.Add(s.Offset)
}

func crateTemplate(requiredTaps int) *lootbox.Template {
	return &lootbox.Template{
		Collision: &lootbox.CollisionShape{HalfExtents: lootbox.Splat(0.05)},
		Physics:   &lootbox.PhysicsBody{Mass: 0.5, Dynamic: true},
		Lootbox:   &lootbox.LootboxState{RequiredTaps: requiredTaps},
	}
}
