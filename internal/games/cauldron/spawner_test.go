package cauldron

import (
	"math"
	"testing"

	"github.com/vovakirdan/cauldron/internal/config"
	"github.com/vovakirdan/cauldron/internal/core"
)

func TestSpawnTimer(t *testing.T) {
	tests := []struct {
		name    string
		ticks   []float64
		fired   int
		elapsed float64
	}{
		{"short of period", []float64{1, 1}, 0, 2},
		{"exactly one period", []float64{3}, 1, 0},
		{"3.1 then zero", []float64{3.1, 0}, 1, 0.1},
		{"long tick fires once", []float64{7}, 1, 1},
		{"accumulates", []float64{1, 1, 1, 1, 1, 1}, 2, 0},
		{"negative ignored", []float64{-5, 2}, 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			timer := NewSpawnTimer(3)
			fired := 0
			for _, dt := range tc.ticks {
				if timer.Tick(dt) {
					fired++
				}
			}
			if fired != tc.fired {
				t.Errorf("fired = %d, expected %d", fired, tc.fired)
			}
			if math.Abs(timer.Elapsed()-tc.elapsed) > 1e-9 {
				t.Errorf("Elapsed() = %v, expected %v", timer.Elapsed(), tc.elapsed)
			}
		})
	}
}

func TestSpawnOnceAfterLongTickThenZero(t *testing.T) {
	g := newTestGame(t)

	g.dt = 3.1
	g.Step(core.NewInputFrame())
	g.dt = 0
	g.Step(core.NewInputFrame())

	if g.spawned != 1 {
		t.Errorf("spawned = %d, expected 1", g.spawned)
	}
	if n := len(g.Ingredients()); n != 1 {
		t.Errorf("live ingredients = %d, expected 1", n)
	}
}

func TestSpawnPlacementAndShape(t *testing.T) {
	g := newTestGame(t)
	g.dt = 3

	for i := 0; i < 50; i++ {
		g.spawnIngredients()
	}
	if g.spawned != 50 {
		t.Fatalf("spawned = %d, expected 50", g.spawned)
	}

	for _, ing := range g.Ingredients() {
		if ing.Pos.X < -220 || ing.Pos.X > -180 {
			t.Errorf("spawn x = %v, expected within [-220, -180]", ing.Pos.X)
		}
		if ing.Pos.Y != 580 {
			t.Errorf("spawn y = %v, expected 580", ing.Pos.Y)
		}
		if ing.Radius < 20 || ing.Radius >= 60 {
			t.Errorf("radius = %v, expected within [20, 60)", ing.Radius)
		}
		if ing.Kind < 0 || ing.Kind > MaxKind {
			t.Errorf("kind = %d, expected within [0, %d]", ing.Kind, MaxKind)
		}
	}
}

func TestSpawnSeqIncreases(t *testing.T) {
	g := newTestGame(t)
	g.spawnIngredient(core.V(0, 0), 0.5, 0)
	g.spawnIngredient(core.V(0, 0), 0.5, 1)

	seen := map[uint64]bool{}
	for _, ing := range g.Ingredients() {
		seen[ing.Seq] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("Seq values = %v, expected 1 and 2", seen)
	}
}

func TestSpawnPeriodFollowsDifficulty(t *testing.T) {
	g := newTestGame(t, func(c *config.CauldronConfig) {
		c.Difficulty.Enabled = true
		c.Difficulty.Progression.MaxAt = 10
	})
	g.caught = 10
	g.dt = 0
	g.spawnIngredients()

	want := 3.0 * (1 - 0.6)
	if math.Abs(g.timer.Period()-want) > 1e-9 {
		t.Errorf("Period() = %v, expected %v", g.timer.Period(), want)
	}
}
