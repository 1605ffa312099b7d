package cauldron

import (
	"testing"

	"github.com/vovakirdan/cauldron/internal/config"
	"github.com/vovakirdan/cauldron/internal/core"
)

// newTestGame builds a game on a 128x72 viewport, so one cell is 10x10
// world units.
func newTestGame(t *testing.T, mutate ...func(*config.CauldronConfig)) *Game {
	t.Helper()
	cfg := config.DefaultCauldronConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 128, ScreenH: 72, TickRate: 60, Seed: 1})
	return g
}

func noGravity(c *config.CauldronConfig) {
	c.World.Gravity = 0
}

// pointerAt returns a pointer over the cell containing world point p.
func pointerAt(g *Game, p core.Vec2, primary bool) core.Pointer {
	x, y := g.camera.WorldToViewport(p)
	return core.Pointer{X: x, Y: y, Inside: true, Primary: primary}
}

// checkTracker verifies the tracker invariants and that a dragged entity is
// still alive with a body.
func checkTracker(t *testing.T, g *Game, after string) {
	t.Helper()
	target, hasTarget := g.tracker.Target()
	_, hasStart := g.tracker.Start()
	if hasTarget != hasStart {
		t.Fatalf("after %s: target present = %v, start present = %v", after, hasTarget, hasStart)
	}
	if !hasTarget {
		if len(g.tracker.Samples()) != 0 {
			t.Fatalf("after %s: %d samples without a target", after, len(g.tracker.Samples()))
		}
		return
	}
	if !g.world.Alive(target) || !g.physics.Has(target) {
		t.Fatalf("after %s: tracker holds despawned entity %v", after, target)
	}
}

// stepChecked runs one tick system by system, checking the tracker after
// each one.
func stepChecked(t *testing.T, g *Game, p core.Pointer) {
	t.Helper()
	g.pointer = p
	g.ticks++
	for _, sys := range g.schedule {
		if sys.when != nil && !sys.when(g) {
			continue
		}
		sys.run(g)
		checkTracker(t, g, sys.name)
	}
}
