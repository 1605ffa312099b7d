package physics

import (
	"errors"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/cauldron/internal/core"
)

type tag struct{}

func newEntities(n int) []ecs.Entity {
	world := ecs.NewWorld()
	m := ecs.NewMap1[tag](&world)
	out := make([]ecs.Entity, n)
	for i := range out {
		out[i] = m.NewEntity(&tag{})
	}
	return out
}

var testBall = Ball{Mass: 1, Radius: 20, Restitution: 0.5, Friction: 0.5}

func TestBallFalls(t *testing.T) {
	es := newEntities(1)
	w := NewWorld(-98.1)
	w.AddBall(es[0], core.V(0, 100), testBall)

	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60)
	}

	pos, _, ok := w.Transform(es[0])
	if !ok {
		t.Fatal("Transform() should find the ball")
	}
	if pos.Y >= 100 {
		t.Errorf("ball Y = %v after one second, expected it to fall below 100", pos.Y)
	}
}

func TestApplyImpulse(t *testing.T) {
	es := newEntities(1)
	w := NewWorld(0)
	w.AddBall(es[0], core.V(0, 0), testBall)

	if err := w.ApplyImpulse(es[0], core.V(10, 0), 14); err != nil {
		t.Fatalf("ApplyImpulse() error = %v", err)
	}

	vel, _ := w.Velocity(es[0])
	// mass 1: velocity equals the impulse
	if vel.X < 9.999 || vel.X > 10.001 || vel.Y != 0 {
		t.Errorf("Velocity() = %v, expected (10, 0)", vel)
	}
	if av, _ := w.AngularVelocity(es[0]); av <= 0 {
		t.Errorf("AngularVelocity() = %v, expected positive spin from torque", av)
	}
}

func TestApplyImpulseMissingBody(t *testing.T) {
	es := newEntities(1)
	w := NewWorld(0)
	if err := w.ApplyImpulse(es[0], core.V(1, 1), 1); !errors.Is(err, ErrNoBody) {
		t.Errorf("ApplyImpulse() on missing body = %v, expected ErrNoBody", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	es := newEntities(1)
	w := NewWorld(0)
	w.AddBall(es[0], core.V(0, 0), testBall)

	if !w.Remove(es[0]) {
		t.Error("first Remove() should report a body")
	}
	if w.Remove(es[0]) {
		t.Error("second Remove() should be a no-op")
	}
	if w.Has(es[0]) || w.Len() != 0 {
		t.Error("body should be gone after Remove()")
	}
	// Stepping with nothing left must not panic.
	w.Step(1.0 / 60)
}

func TestPointQueryFiltersByCategory(t *testing.T) {
	es := newEntities(3)
	w := NewWorld(0)
	w.AddBall(es[0], core.V(0, 0), testBall)
	w.AddContainer(es[1], core.V(0, 0), 150)
	w.AddShelf(es[2], core.V(0, 0), 300, 50, 0.3, 0.5)

	hits := w.PointQuery(core.V(5, 5), CategoryIngredient)
	if len(hits) != 1 || hits[0] != es[0] {
		t.Errorf("PointQuery(ingredient) = %v, expected [%v]", hits, es[0])
	}

	if hits := w.PointQuery(core.V(500, 500), CategoryIngredient); len(hits) != 0 {
		t.Errorf("PointQuery() far away = %v, expected none", hits)
	}
}

func TestPointQueryReturnsEveryContainingShape(t *testing.T) {
	es := newEntities(2)
	w := NewWorld(0)
	w.AddBall(es[0], core.V(0, 0), testBall)
	w.AddBall(es[1], core.V(10, 0), testBall)

	hits := w.PointQuery(core.V(5, 0), CategoryIngredient)
	if len(hits) != 2 {
		t.Errorf("PointQuery() over two overlapping balls = %v, expected both", hits)
	}

	// Inside the bounding box of the first ball but outside its circle.
	if hits := w.PointQuery(core.V(-18, 18), CategoryIngredient); len(hits) != 0 {
		t.Errorf("PointQuery() at the box corner = %v, expected none", hits)
	}
}

func TestContainerReportsContacts(t *testing.T) {
	es := newEntities(2)
	w := NewWorld(0)
	w.AddContainer(es[0], core.V(0, 0), 150)
	w.AddBall(es[1], core.V(0, 0), testBall)

	w.Step(1.0 / 60)

	contacts := w.Drain()
	if len(contacts) != 1 {
		t.Fatalf("Drain() len = %d, expected 1", len(contacts))
	}
	if contacts[0].Ingredient != es[1] || contacts[0].Container != es[0] {
		t.Errorf("Drain()[0] = %+v, expected ingredient %v in container %v", contacts[0], es[1], es[0])
	}
	if len(w.Drain()) != 0 {
		t.Error("Drain() should clear the buffer")
	}

	// The sensor never pushes the ingredient.
	if vel, _ := w.Velocity(es[1]); vel != (core.Vec2{}) {
		t.Errorf("Velocity() = %v, expected zero inside a sensor", vel)
	}
}

func TestSetPositionMovesContainer(t *testing.T) {
	es := newEntities(1)
	w := NewWorld(0)
	w.AddContainer(es[0], core.V(0, 0), 150)

	if err := w.SetPosition(es[0], core.V(40, -20)); err != nil {
		t.Fatalf("SetPosition() error = %v", err)
	}
	if pos, _, _ := w.Transform(es[0]); pos != core.V(40, -20) {
		t.Errorf("Transform() = %v, expected (40, -20)", pos)
	}
}
