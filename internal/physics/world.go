// Package physics wraps a chipmunk2d space and keys its bodies by ECS
// entity handles. Every body belongs to exactly one entity; removing an
// entity that has no body is a no-op.
package physics

import (
	"errors"

	"github.com/jakecoffman/cp"
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/cauldron/internal/core"
)

// Collision categories used for shape filtering.
const (
	CategoryScenery uint = 1 << iota
	CategoryIngredient
	CategoryContainer
)

const (
	collisionIngredient cp.CollisionType = iota + 1
	collisionContainer
)

// ErrNoBody is returned when an entity has no body in the world, usually
// because it was despawned after being referenced.
var ErrNoBody = errors.New("physics: entity has no body")

// Ball describes a dynamic circular body.
type Ball struct {
	Mass        float64
	Radius      float64
	Restitution float64
	Friction    float64
}

// Contact is reported when an ingredient starts touching a container.
type Contact struct {
	Ingredient ecs.Entity
	Container  ecs.Entity
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
}

type shapeRef struct {
	entity    ecs.Entity
	container bool
}

// World is the rigid-body simulation.
type World struct {
	space    *cp.Space
	bodies   map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]shapeRef
	contacts []Contact // buffered during Step, drained by the game
}

// NewWorld creates an empty world with the given vertical gravity.
func NewWorld(gravity float64) *World {
	w := &World{
		space:  cp.NewSpace(),
		bodies: make(map[ecs.Entity]*bodyInfo),
		shapes: make(map[*cp.Shape]shapeRef),
	}
	w.space.SetGravity(cp.Vector{X: 0, Y: gravity})

	handler := w.space.NewCollisionHandler(collisionIngredient, collisionContainer)
	handler.UserData = w
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok {
			return true
		}
		a, b := arb.Shapes()
		world.recordContact(a, b)
		return true
	}
	return w
}

// recordContact buffers a contact. Contacts involving unknown shapes are
// dropped.
func (w *World) recordContact(a, b *cp.Shape) {
	ra, okA := w.shapes[a]
	rb, okB := w.shapes[b]
	if !okA || !okB || ra.container == rb.container {
		return
	}
	if ra.container {
		ra, rb = rb, ra
	}
	w.contacts = append(w.contacts, Contact{Ingredient: ra.entity, Container: rb.entity})
}

// AddBall adds a dynamic ingredient body at pos.
func (w *World) AddBall(e ecs.Entity, pos core.Vec2, b Ball) {
	body := cp.NewBody(b.Mass, cp.MomentForCircle(b.Mass, 0, b.Radius, cp.Vector{}))
	body.SetPosition(toCP(pos))

	shape := cp.NewCircle(body, b.Radius, cp.Vector{})
	shape.SetElasticity(b.Restitution)
	shape.SetFriction(b.Friction)
	shape.SetCollisionType(collisionIngredient)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryIngredient, cp.ALL_CATEGORIES))

	w.add(e, body, shape, false)
}

// AddContainer adds a kinematic sensor box. It reports contacts with
// ingredients but never pushes them.
func (w *World) AddContainer(e ecs.Entity, pos core.Vec2, size float64) {
	body := cp.NewKinematicBody()
	body.SetPosition(toCP(pos))

	shape := cp.NewBox(body, size, size, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionContainer)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryContainer, CategoryIngredient))

	w.add(e, body, shape, true)
}

// AddShelf adds a static box rotated by angle radians around its centre.
func (w *World) AddShelf(e ecs.Entity, pos core.Vec2, width, height, angle, friction float64) {
	body := cp.NewStaticBody()
	body.SetPosition(toCP(pos))
	body.SetAngle(angle)

	shape := cp.NewBox(body, width, height, 0)
	// Restitution multiplies, so 1 leaves the ingredient's own bounce intact.
	shape.SetElasticity(1)
	shape.SetFriction(friction)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryScenery, cp.ALL_CATEGORIES))

	w.add(e, body, shape, false)
}

func (w *World) add(e ecs.Entity, body *cp.Body, shape *cp.Shape, container bool) {
	if _, exists := w.bodies[e]; exists {
		w.Remove(e)
	}
	body.UserData = e
	shape.UserData = e
	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.bodies[e] = &bodyInfo{body: body, shape: shape}
	w.shapes[shape] = shapeRef{entity: e, container: container}
}

// Remove deletes the body of e. It reports whether a body existed.
func (w *World) Remove(e ecs.Entity) bool {
	info, ok := w.bodies[e]
	if !ok {
		return false
	}
	w.space.RemoveShape(info.shape)
	w.space.RemoveBody(info.body)
	delete(w.shapes, info.shape)
	delete(w.bodies, e)
	return true
}

// Has reports whether e has a body.
func (w *World) Has(e ecs.Entity) bool {
	_, ok := w.bodies[e]
	return ok
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// Drain returns the contacts buffered since the last call and clears them.
// Bodies must not be removed while the space steps, so contact handling is
// deferred to the caller.
func (w *World) Drain() []Contact {
	out := w.contacts
	w.contacts = nil
	return out
}

// PointQuery returns the entities whose shapes contain p and match mask.
func (w *World) PointQuery(p core.Vec2, mask uint) []ecs.Entity {
	var hits []ecs.Entity
	pt := toCP(p)
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)
	// The broadphase only matches bounding boxes; keep shapes that
	// actually contain the point.
	w.space.BBQuery(cp.NewBBForCircle(pt, 0), filter, func(shape *cp.Shape, _ interface{}) {
		if shape.PointQuery(pt).Distance > 0 {
			return
		}
		if ref, ok := w.shapes[shape]; ok {
			hits = append(hits, ref.entity)
		}
	}, nil)
	return hits
}

// ApplyImpulse applies a linear impulse at the centre of mass of e and adds
// an angular impulse of torque.
func (w *World) ApplyImpulse(e ecs.Entity, impulse core.Vec2, torque float64) error {
	info, ok := w.bodies[e]
	if !ok {
		return ErrNoBody
	}
	body := info.body
	body.ApplyImpulseAtWorldPoint(toCP(impulse), body.Position())
	if m := body.Moment(); m > 0 {
		body.SetAngularVelocity(body.AngularVelocity() + torque/m)
	}
	return nil
}

// Transform returns the position and rotation of e.
func (w *World) Transform(e ecs.Entity) (core.Vec2, float64, bool) {
	info, ok := w.bodies[e]
	if !ok {
		return core.Vec2{}, 0, false
	}
	return fromCP(info.body.Position()), info.body.Angle(), true
}

// Velocity returns the linear velocity of e.
func (w *World) Velocity(e ecs.Entity) (core.Vec2, bool) {
	info, ok := w.bodies[e]
	if !ok {
		return core.Vec2{}, false
	}
	return fromCP(info.body.Velocity()), true
}

// AngularVelocity returns the angular velocity of e.
func (w *World) AngularVelocity(e ecs.Entity) (float64, bool) {
	info, ok := w.bodies[e]
	if !ok {
		return 0, false
	}
	return info.body.AngularVelocity(), true
}

// SetPosition teleports the body of e.
func (w *World) SetPosition(e ecs.Entity, p core.Vec2) error {
	info, ok := w.bodies[e]
	if !ok {
		return ErrNoBody
	}
	info.body.SetPosition(toCP(p))
	return nil
}

func toCP(v core.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) core.Vec2 {
	return core.Vec2{X: v.X, Y: v.Y}
}
