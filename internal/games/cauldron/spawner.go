package cauldron

import (
	"math"

	"github.com/vovakirdan/cauldron/internal/audio"
	"github.com/vovakirdan/cauldron/internal/core"
	"github.com/vovakirdan/cauldron/internal/physics"
)

// SpawnTimer is a repeating timer that fires at most once per tick.
// Time left over after firing carries into the next period, but a long
// tick never produces a burst of spawns.
type SpawnTimer struct {
	period  float64
	elapsed float64
}

// NewSpawnTimer creates a timer with the given period in seconds.
func NewSpawnTimer(period float64) SpawnTimer {
	return SpawnTimer{period: period}
}

// Tick advances the timer by dt seconds and reports whether it fired.
func (t *SpawnTimer) Tick(dt float64) bool {
	if t.period <= 0 || dt < 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.period {
		return false
	}
	t.elapsed = math.Mod(t.elapsed, t.period)
	return true
}

// SetPeriod changes the period without resetting elapsed time.
func (t *SpawnTimer) SetPeriod(period float64) {
	t.period = period
}

// Period returns the current period.
func (t *SpawnTimer) Period() float64 {
	return t.period
}

// Elapsed returns the time accumulated toward the next firing.
func (t *SpawnTimer) Elapsed() float64 {
	return t.elapsed
}

// spawnIngredients advances the spawn timer and drops one ingredient when
// it fires.
func (g *Game) spawnIngredients() {
	g.timer.SetPeriod(g.difficulty.SpawnPeriod(g.cfg.Spawner.Period, g.caught, g.ticks))
	if !g.timer.Tick(g.dt) {
		return
	}

	sc := g.cfg.Spawner
	size := g.rng.Float64()
	pos := core.V(sc.X+(g.rng.Float64()-0.5)*2*sc.Jitter, sc.Y)
	kind := int(g.rng.Float64() * float64(sc.Kinds))

	g.spawnIngredient(pos, size, kind)
}

// spawnIngredient creates an ingredient entity and its physics body.
func (g *Game) spawnIngredient(pos core.Vec2, size float64, kind int) {
	sc := g.cfg.Spawner
	radius := sc.Radius.At(size)

	g.nextSeq++
	e := g.ingredients.NewEntity(
		&Ingredient{Kind: kind, Seq: g.nextSeq},
		&Transform{Pos: pos},
		&Collider{Radius: radius},
	)
	g.physics.AddBall(e, pos, physics.Ball{
		Mass:        sc.Mass.At(size),
		Radius:      radius,
		Restitution: math.Max(sc.Bounce.At(size), 0),
		Friction:    sc.Friction,
	})
	g.spawned++

	g.log.Debug("spawned ingredient", "entity", e, "kind", kind, "size", size, "x", pos.X)
}

// playCue is a small helper so systems do not care whether sound is on.
func (g *Game) playCue(c audio.Cue) {
	if g.cues != nil {
		g.cues.Play(c)
	}
}
