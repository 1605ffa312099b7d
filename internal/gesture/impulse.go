package gesture

import (
	"math"

	"github.com/vovakirdan/cauldron/internal/core"
)

// Mean returns the average displacement of the samples from start.
func Mean(start core.Vec2, samples []core.Vec2) core.Vec2 {
	if len(samples) == 0 {
		return core.Vec2{}
	}
	var sum core.Vec2
	for _, s := range samples {
		sum = sum.Add(s.Sub(start))
	}
	return sum.Scale(1 / float64(len(samples)))
}

// Gain is the magnitude factor applied to the mean displacement: log2 of
// its length, floored at zero. Averages shorter than one world unit give no
// gain, so a twitch never flings an ingredient backwards.
func Gain(length float64) float64 {
	if !(length > 1) || math.IsInf(length, 0) {
		return 0
	}
	return math.Log2(length)
}

// Impulse turns a sampled trajectory into an impulse vector:
// mean(sample - start) * Gain(|mean|).
// The result is always finite; degenerate input yields the zero vector.
func Impulse(start core.Vec2, samples []core.Vec2) core.Vec2 {
	mean := Mean(start, samples)
	if !mean.IsFinite() {
		return core.Vec2{}
	}
	out := mean.Scale(Gain(mean.Length()))
	if !out.IsFinite() {
		return core.Vec2{}
	}
	return out
}
