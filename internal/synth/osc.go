package synth

import (
	"math"
	"math/rand"
)

// Shape is an oscillator wave shape.
type Shape int

// Oscillator shapes.
const (
	ShapeSine Shape = iota
	ShapeTriangle
	ShapeSawtooth
)

// Wave evaluates a single oscillator at time t for the given frequency
// and shape. Output is in [-1, 1].
func Wave(freq, t float64, shape Shape) float64 {
	phase := freq * t
	phase -= math.Floor(phase)

	switch shape {
	case ShapeTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case ShapeSawtooth:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Noise produces a decaying uniform noise burst: uniform(-1,1)*e^(-10t).
// It is the only non-deterministic primitive in the pipeline; callers
// pass an explicitly seeded source so tests can pin the output.
func Noise(t float64, rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * math.Exp(-10*t)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
