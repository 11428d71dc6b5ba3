package lootbox

// Hit is a single intersection between a projected ray and scene geometry.
type Hit struct {
	// Entity is the entity the intersected geometry belongs to, or zero for
	// static scene geometry such as a detected surface.
	Entity EntityID

	// World is the intersection point in global scene space.
	World Vec3

	// Distance is the distance from the ray origin to the intersection.
	Distance float64
}

// Scene is the narrow view of the rendering/tracking engine the core
// consumes. Implementations are expected to maintain camera pose and scene
// geometry themselves.
type Scene interface {
	// CastRay projects a ray from the given viewport point into the scene and
	// returns every intersection ordered nearest-first. An empty result means
	// the ray hit open space.
	CastRay(pt Point2) []Hit

	// AnchorFrame returns the current pose of the active anchor.
	AnchorFrame() Transform

	// ToAnchorSpace converts a global scene-space position into the active
	// anchor's coordinate frame.
	ToAnchorSpace(world Vec3) Vec3
}
