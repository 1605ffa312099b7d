package gesture

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/cauldron/internal/core"
)

type marker struct{}

// newEntities creates n live entities for tracker tests.
func newEntities(t *testing.T, n int) []ecs.Entity {
	t.Helper()
	world := ecs.NewWorld()
	m := ecs.NewMap1[marker](&world)
	out := make([]ecs.Entity, n)
	for i := range out {
		out[i] = m.NewEntity(&marker{})
	}
	return out
}

func checkInvariants(t *testing.T, tr *Tracker) {
	t.Helper()
	_, hasTarget := tr.Target()
	_, hasStart := tr.Start()
	if hasTarget != hasStart {
		t.Errorf("target present = %v but start present = %v", hasTarget, hasStart)
	}
	if !hasTarget && len(tr.Samples()) != 0 {
		t.Errorf("samples should be empty without a target, got %d", len(tr.Samples()))
	}
}

func TestTrackerLifecycle(t *testing.T) {
	es := newEntities(t, 2)
	var tr Tracker
	checkInvariants(t, &tr)

	// Samples before a drag are dropped
	tr.Sample(core.V(1, 1))
	checkInvariants(t, &tr)

	if !tr.Begin(es[0], core.V(10, 10)) {
		t.Fatal("Begin should start a drag on an idle tracker")
	}
	checkInvariants(t, &tr)

	if tr.Begin(es[1], core.V(0, 0)) {
		t.Error("Begin should be ignored while dragging")
	}
	if got, _ := tr.Target(); got != es[0] {
		t.Errorf("Target() = %v, expected %v", got, es[0])
	}

	tr.Sample(core.V(11, 10))
	tr.Sample(core.V(12, 10))
	if len(tr.Samples()) != 2 {
		t.Fatalf("Samples() len = %d, expected 2", len(tr.Samples()))
	}
	if tr.Samples()[0] != core.V(11, 10) {
		t.Error("samples should be kept oldest first")
	}

	tr.Reset()
	checkInvariants(t, &tr)
	if tr.Active() {
		t.Error("Reset should end the drag")
	}
}

func TestTrackerForget(t *testing.T) {
	es := newEntities(t, 2)
	var tr Tracker
	tr.Begin(es[0], core.V(0, 0))
	tr.Sample(core.V(5, 5))

	if tr.Forget(es[1]) {
		t.Error("Forget of another entity should not reset")
	}
	if !tr.Active() {
		t.Fatal("drag should survive forgetting an unrelated entity")
	}

	if !tr.Forget(es[0]) {
		t.Error("Forget of the dragged entity should reset")
	}
	checkInvariants(t, &tr)

	if tr.Forget(es[0]) {
		t.Error("Forget on an idle tracker should be a no-op")
	}
}

func TestImpulseSingleSample(t *testing.T) {
	start := core.V(0, 0)
	// |mean| = 8 -> gain 3
	got := Impulse(start, []core.Vec2{core.V(8, 0)})
	if math.Abs(got.X-24) > 1e-9 || got.Y != 0 {
		t.Errorf("Impulse() = %v, expected (24, 0)", got)
	}
}

func TestImpulseAveragesSamples(t *testing.T) {
	start := core.V(100, 100)
	samples := []core.Vec2{
		core.V(100, 104), // +4
		core.V(100, 112), // +12
	}
	// mean = (0, 8), gain = 3
	got := Impulse(start, samples)
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-24) > 1e-9 {
		t.Errorf("Impulse() = %v, expected (0, 24)", got)
	}
}

func TestImpulseZeroDisplacement(t *testing.T) {
	start := core.V(3, 4)
	got := Impulse(start, []core.Vec2{start})
	if got != (core.Vec2{}) {
		t.Errorf("Impulse() with zero displacement = %v, expected zero", got)
	}
	if !got.IsFinite() {
		t.Error("Impulse() must never be NaN or infinite")
	}
}

func TestImpulseNoSamples(t *testing.T) {
	if got := Impulse(core.V(1, 1), nil); got != (core.Vec2{}) {
		t.Errorf("Impulse() without samples = %v, expected zero", got)
	}
}

func TestImpulseShortGestureHasNoGain(t *testing.T) {
	// |mean| = 0.5 would give log2 = -1 and reverse the fling
	got := Impulse(core.V(0, 0), []core.Vec2{core.V(0.3, 0.4)})
	if got != (core.Vec2{}) {
		t.Errorf("Impulse() for sub-unit gesture = %v, expected zero", got)
	}
}

func TestImpulseLinearInDisplacement(t *testing.T) {
	// Swapping samples around keeps the mean and therefore the impulse.
	start := core.V(0, 0)
	a := Impulse(start, []core.Vec2{core.V(10, 0), core.V(30, 20)})
	b := Impulse(start, []core.Vec2{core.V(30, 20), core.V(10, 0)})
	if a != b {
		t.Errorf("Impulse() depends on sample order: %v vs %v", a, b)
	}

	// The impulse points along the mean and scales by log2 of its length.
	mean := Mean(start, []core.Vec2{core.V(10, 0), core.V(30, 20)})
	want := mean.Scale(math.Log2(mean.Length()))
	if math.Abs(a.X-want.X) > 1e-9 || math.Abs(a.Y-want.Y) > 1e-9 {
		t.Errorf("Impulse() = %v, expected %v", a, want)
	}
}

func TestGain(t *testing.T) {
	tests := []struct {
		length, expected float64
	}{
		{0, 0},
		{0.5, 0},
		{1, 0},
		{2, 1},
		{1024, 10},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, tc := range tests {
		if got := Gain(tc.length); got != tc.expected {
			t.Errorf("Gain(%v) = %v, expected %v", tc.length, got, tc.expected)
		}
	}
}

func TestTrackerImpulse(t *testing.T) {
	es := newEntities(t, 1)
	var tr Tracker

	if got := tr.Impulse(); got != (core.Vec2{}) {
		t.Errorf("Impulse() on idle tracker = %v, expected zero", got)
	}

	tr.Begin(es[0], core.V(0, 0))
	tr.Sample(core.V(0, -16))
	got := tr.Impulse()
	if math.Abs(got.Y+64) > 1e-9 {
		t.Errorf("Impulse() = %v, expected (0, -64)", got)
	}
}
