package cauldron

import (
	"errors"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/cauldron/internal/audio"
	"github.com/vovakirdan/cauldron/internal/core"
	"github.com/vovakirdan/cauldron/internal/physics"
)

// cursor resolves the pointer to a world point for this tick.
func (g *Game) cursor() (core.Vec2, bool) {
	return g.camera.CursorWorld(g.pointer)
}

// detectDrag starts a drag on the ingredient under the cursor when the
// primary button is held and no drag is in progress.
func (g *Game) detectDrag() {
	if g.tracker.Active() || !g.pointer.Primary {
		return
	}
	point, ok := g.cursor()
	if !ok {
		return
	}

	target, found := g.topmostAt(point)
	if !found {
		return
	}
	g.tracker.Begin(target, point)
	g.log.Debug("drag started", "entity", target, "x", point.X, "y", point.Y)
}

// topmostAt returns the most recently spawned ingredient containing point.
func (g *Game) topmostAt(point core.Vec2) (ecs.Entity, bool) {
	var (
		best    ecs.Entity
		bestSeq uint64
		found   bool
	)
	for _, e := range g.physics.PointQuery(point, physics.CategoryIngredient) {
		if !g.world.Alive(e) || !g.ingredients.HasAll(e) {
			continue
		}
		ing, _, _ := g.ingredients.Get(e)
		if !found || ing.Seq > bestSeq {
			best, bestSeq, found = e, ing.Seq, true
		}
	}
	return best, found
}

// translateDrag samples the cursor for the drag in progress, updates the
// feedback arrow, and flings the target when the button is released.
func (g *Game) translateDrag() {
	target, ok := g.tracker.Target()
	if !ok {
		return
	}
	if !g.world.Alive(target) {
		g.log.Debug("drag target despawned, dropping gesture", "entity", target)
		g.endDrag()
		return
	}
	point, ok := g.cursor()
	if !ok {
		return
	}

	g.tracker.Sample(point)
	impulse := g.tracker.Impulse().Scale(g.cfg.Gesture.ImpulseScale)
	start, _ := g.tracker.Start()
	g.arrow.Show(start, start.Add(impulse))

	if g.pointer.Primary {
		return
	}

	err := g.physics.ApplyImpulse(target, impulse, g.cfg.Gesture.Torque)
	switch {
	case errors.Is(err, physics.ErrNoBody):
		g.log.Debug("fling target has no body", "entity", target)
	case err != nil:
		g.log.Warn("fling failed", "entity", target, "err", err)
	default:
		g.log.Debug("flung ingredient", "entity", target, "ix", impulse.X, "iy", impulse.Y,
			"samples", len(g.tracker.Samples()))
		g.playCue(audio.CueFling)
	}
	g.endDrag()
}

// endDrag clears the tracker and the feedback arrow together.
func (g *Game) endDrag() {
	g.tracker.Reset()
	g.arrow.Hide()
}

// sweepBox is the region ingredients must overlap to stay alive.
func (g *Game) sweepBox() core.Box {
	w := g.cfg.World
	box := core.Box{
		MinX: -w.Width / 2, MaxX: w.Width / 2,
		MinY: math.Inf(-1), MaxY: math.Inf(1),
	}
	if g.cfg.Sweeper.FloorBound {
		box.MinY = -w.Height / 2
	}
	return box
}

// sweepOutside despawns ingredients that no longer overlap the window.
func (g *Game) sweepOutside() {
	box := g.sweepBox()

	var gone []ecs.Entity
	query := g.ingredientFilter.Query()
	for query.Next() {
		_, t, c := query.Get()
		if !box.IntersectsSphere(t.Pos, c.Radius) {
			gone = append(gone, query.Entity())
		}
	}

	for _, e := range gone {
		if g.despawn(e) {
			g.lost++
			g.playCue(audio.CueLost)
			g.log.Debug("ingredient left the window", "entity", e)
		}
	}
}

// cauldronEntity returns the single cauldron.
func (g *Game) cauldronEntity() (ecs.Entity, *Cauldron, *Transform, bool) {
	query := g.cauldronFilter.Query()
	defer query.Close()
	if !query.Next() {
		return ecs.Entity{}, nil, nil, false
	}
	c, t := query.Get()
	return query.Entity(), c, t, true
}

// laneTarget clamps the cursor into the strip the cauldron may occupy:
// fully inside the window horizontally, resting on the floor or lifted up to
// cauldron.lift above it.
func (g *Game) laneTarget(cursor core.Vec2, size float64) core.Vec2 {
	w := g.cfg.World
	floor := -w.Height/2 + size/2
	return core.Vec2{
		X: core.ClampF(cursor.X, -w.Width/2+size/2, w.Width/2-size/2),
		Y: core.ClampF(cursor.Y, floor, floor+g.cfg.Cauldron.Lift),
	}
}

// moveCauldron drags the cauldron toward the cursor while the primary
// button is held over it.
func (g *Game) moveCauldron() {
	if !g.pointer.Primary {
		return
	}
	point, ok := g.cursor()
	if !ok {
		return
	}
	e, c, t, ok := g.cauldronEntity()
	if !ok {
		return
	}

	target := g.laneTarget(point, c.Size)
	if !core.BoxAround(t.Pos, c.Size, c.Size).Contains(target) {
		return
	}
	t.Pos = t.Pos.Lerp(target, g.cfg.Cauldron.Follow)
	if err := g.physics.SetPosition(e, t.Pos); err != nil {
		g.log.Warn("cauldron has no body", "entity", e, "err", err)
	}
}

// handleCatches despawns every ingredient that touched the cauldron during
// the last physics step.
func (g *Game) handleCatches() {
	for _, contact := range g.physics.Drain() {
		if g.despawn(contact.Ingredient) {
			g.caught++
			g.playCue(audio.CueCatch)
			g.log.Debug("ingredient caught", "entity", contact.Ingredient, "caught", g.caught)
		}
	}
}

func (g *Game) stepPhysics() {
	g.physics.Step(g.dt)
}

// syncTransforms copies body poses into the ECS.
func (g *Game) syncTransforms() {
	query := g.ingredientFilter.Query()
	for query.Next() {
		_, t, _ := query.Get()
		if pos, angle, ok := g.physics.Transform(query.Entity()); ok {
			t.Pos, t.Angle = pos, angle
		}
	}

	cq := g.cauldronFilter.Query()
	for cq.Next() {
		_, t := cq.Get()
		if pos, _, ok := g.physics.Transform(cq.Entity()); ok {
			t.Pos = pos
		}
	}
}

// despawn is the single removal path for entities with bodies. It removes
// the body, the entity if still alive, and ends a drag on it. Despawning a
// dead handle is a no-op. It reports whether anything was removed.
func (g *Game) despawn(e ecs.Entity) bool {
	removed := g.physics.Remove(e)
	if g.world.Alive(e) {
		g.world.RemoveEntity(e)
		removed = true
	}
	if g.tracker.Forget(e) {
		g.arrow.Hide()
	}
	return removed
}
