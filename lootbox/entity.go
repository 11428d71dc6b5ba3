// Package lootbox implements the interactive loot-crate core: spawning
// crates from a template, resolving 2D screen interactions against 3D scene
// geometry, tracking per-crate tap progress, decaying idle progress once per
// frame, and revealing a random reward when the tap threshold is reached.
// Rendering, tracking, and physics stay external behind the Scene interface.
package lootbox

// EntityID identifies a placed entity. IDs are assigned sequentially by the
// Store and never reused; zero means "no entity".
type EntityID uint64

// Point2 is a 2D viewport coordinate in screen space.
type Point2 struct {
	X, Y float64
}

// Vec3 is a position or scale in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Splat returns a vector with all three components set to s.
func Splat(s float64) Vec3 {
	return Vec3{X: s, Y: s, Z: s}
}

// Quat is a rotation quaternion.
type Quat struct {
	X, Y, Z, W float64
}

// IdentityQuat returns the no-rotation quaternion.
func IdentityQuat() Quat {
	return Quat{W: 1}
}

// Transform is a world-space pose: position, orientation, and scale.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// NewTransform returns a transform at the given position with identity
// rotation and unit scale.
func NewTransform(position Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: IdentityQuat(),
		Scale:    Splat(1),
	}
}

// Anchor is a stable reference frame in the scene, typically a detected
// surface. Entities positioned relative to an anchor stay correctly placed
// when the anchor itself moves. The anchor owns scene placement; entities
// hold a non-owning reference to it.
type Anchor struct {
	Name string
	Pose Transform
}

// CollisionShape describes the collidable bounds handed to the external
// physics engine when an entity is spawned.
type CollisionShape struct {
	HalfExtents Vec3
}

// PhysicsBody holds the parameters of the dynamic body the external physics
// engine simulates. A Dynamic body starts falling as soon as it is given an
// initial transform; the core never drives physics per frame.
type PhysicsBody struct {
	Mass    float64
	Dynamic bool
}

// Entity is a placed object instance: a transform plus optional components.
// Entities are produced by Store.Spawn and released by Store.Destroy.
type Entity struct {
	ID        EntityID
	Transform Transform

	// Anchor is the parent reference frame. Non-owning.
	Anchor *Anchor

	Collision *CollisionShape
	Physics   *PhysicsBody
	Lootbox   *LootboxState
}

// Template is an immutable blueprint carrying the default component set for
// new entities. The template itself is never placed in the scene or mutated;
// Store.Spawn deep-clones it so instances never alias template state.
type Template struct {
	Collision *CollisionShape
	Physics   *PhysicsBody
	Lootbox   *LootboxState
}

// instantiate deep-copies the template's components into a fresh entity.
func (t *Template) instantiate() *Entity {
	e := &Entity{Transform: NewTransform(Vec3{})}
	if t.Collision != nil {
		c := *t.Collision
		e.Collision = &c
	}
	if t.Physics != nil {
		p := *t.Physics
		e.Physics = &p
	}
	if t.Lootbox != nil {
		l := *t.Lootbox
		e.Lootbox = &l
	}
	return e
}
