// Package gesture tracks in-progress mouse drags and turns the sampled
// cursor trajectory into a physics impulse.
package gesture

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/cauldron/internal/core"
)

// Tracker holds the state of the drag gesture in progress, if any.
//
// The target and the start point are set and cleared together, and samples
// only accumulate while a target is held, so Reset is the only way out of
// a drag.
type Tracker struct {
	target  ecs.Entity
	start   core.Vec2
	active  bool
	samples []core.Vec2 // oldest first
}

// Begin starts a drag on target at the given world point.
// It is ignored while another drag is in progress.
func (t *Tracker) Begin(target ecs.Entity, start core.Vec2) bool {
	if t.active {
		return false
	}
	t.target = target
	t.start = start
	t.active = true
	t.samples = t.samples[:0]
	return true
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Target returns the dragged entity.
func (t *Tracker) Target() (ecs.Entity, bool) {
	return t.target, t.active
}

// Start returns the world point where the drag began.
func (t *Tracker) Start() (core.Vec2, bool) {
	return t.start, t.active
}

// Sample appends a cursor position to the trajectory.
// Samples are dropped when no drag is in progress.
func (t *Tracker) Sample(p core.Vec2) {
	if !t.active {
		return
	}
	t.samples = append(t.samples, p)
}

// Samples returns the recorded trajectory, oldest first.
// The slice is only valid until the next call that mutates the tracker.
func (t *Tracker) Samples() []core.Vec2 {
	return t.samples
}

// Impulse computes the impulse for the trajectory recorded so far.
func (t *Tracker) Impulse() core.Vec2 {
	if !t.active {
		return core.Vec2{}
	}
	return Impulse(t.start, t.samples)
}

// Reset clears all drag state.
func (t *Tracker) Reset() {
	t.target = ecs.Entity{}
	t.start = core.Vec2{}
	t.active = false
	t.samples = t.samples[:0]
}

// Forget resets the tracker if e is the dragged entity. Every code path
// that despawns an entity must call it. It reports whether a reset happened.
func (t *Tracker) Forget(e ecs.Entity) bool {
	if !t.active || t.target != e {
		return false
	}
	t.Reset()
	return true
}
