package lootbox

import "errors"

// ErrNoSurfaceFound is returned when a placement ray intersects no scene
// geometry, e.g. the camera is pointed at open space. The caller must not
// spawn an entity in that case.
var ErrNoSurfaceFound = errors.New("lootbox: no surface under screen point")

// DefaultDropHeight is the vertical offset, in scene units, added above the
// resolved surface point so the physics engine animates a visible
// drop-and-settle instead of an instantaneous placement.
const DefaultDropHeight = 0.1

// Placer converts 2D viewport points into placed crates.
type Placer struct {
	Scene    Scene
	Store    *Store
	Template *Template

	// DropHeight overrides DefaultDropHeight when positive.
	DropHeight float64
}

// ResolveScreenPoint returns the anchor-relative position of the nearest
// collidable surface under the given viewport point. Positions are expressed
// in the active anchor's frame, not global scene space, so placed entities
// stay correct if the anchor moves.
func (p *Placer) ResolveScreenPoint(pt Point2) (Vec3, error) {
	hits := p.Scene.CastRay(pt)
	if len(hits) == 0 {
		return Vec3{}, ErrNoSurfaceFound
	}
	return p.Scene.ToAnchorSpace(hits[0].World), nil
}

// Place resolves the viewport point against the scene and spawns a crate a
// small constant height above the surface. No entity is spawned when no
// surface is found.
func (p *Placer) Place(pt Point2) (*Entity, error) {
	pos, err := p.ResolveScreenPoint(pt)
	if err != nil {
		return nil, err
	}
	pos.Y += p.dropHeight()
	return p.Store.Spawn(p.Template, pos), nil
}

func (p *Placer) dropHeight() float64 {
	if p.DropHeight > 0 {
		return p.DropHeight
	}
	return DefaultDropHeight
}
