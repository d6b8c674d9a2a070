package synth

import (
	"math"
	"math/rand"
)

// bassFunc produces the bass layer contribution for one sample. freq is
// half the current chord root frequency; beatPhase is the beat position
// within the measure, in [0, 4).
type bassFunc func(freq, t, beatPhase float64, complexity int, rng *rand.Rand) float64

// pulseGate is an on/off amplitude pulse whose period is derived from
// the profile's rhythm complexity.
func pulseGate(beatPhase float64, rate float64) float64 {
	if math.Mod(beatPhase*rate, 2) < 1 {
		return 1
	}
	return 0
}

// beatFrac is the position within the current beat, in [0, 1).
func beatFrac(beatPhase float64) float64 {
	return beatPhase - math.Floor(beatPhase)
}

var bassFuncs = map[BassStyle]bassFunc{
	BassBouncy: func(freq, t, beatPhase float64, complexity int, _ *rand.Rand) float64 {
		gate := 0.3 + 0.7*pulseGate(beatPhase, float64(complexity)/2)
		return 0.5 * gate * Wave(freq, t, ShapeSine)
	},
	BassMelancholic: func(freq, t, _ float64, _ int, _ *rand.Rand) float64 {
		env := 0.6 + 0.4*math.Sin(2*math.Pi*0.1*t)
		return 0.35 * env * Wave(freq, t, ShapeTriangle)
	},
	BassPounding: func(freq, t, beatPhase float64, complexity int, rng *rand.Rand) float64 {
		gate := pulseGate(beatPhase, float64(complexity)/4)
		body := Wave(freq, t, ShapeSawtooth)
		thump := Noise(beatFrac(beatPhase), rng)
		return 0.6 * gate * (0.8*body + 0.2*thump)
	},
	BassGentle: func(freq, t, _ float64, _ int, _ *rand.Rand) float64 {
		env := 0.7 + 0.3*math.Sin(2*math.Pi*0.08*t)
		return 0.3 * env * Wave(freq, t, ShapeSine)
	},
	BassRestless: func(freq, t, beatPhase float64, complexity int, _ *rand.Rand) float64 {
		gate := 0.4 + 0.6*pulseGate(beatPhase, float64(complexity)/3)
		jitter := 1 + 0.08*math.Sin(2*math.Pi*7.3*t)
		return 0.4 * gate * jitter * Wave(freq, t, ShapeTriangle)
	},
	BassSoft: func(freq, t, _ float64, _ int, _ *rand.Rand) float64 {
		rise := math.Min(1, t*0.25)
		return 0.2 * rise * Wave(freq, t, ShapeSine)
	},
	BassJumping: func(freq, t, beatPhase float64, complexity int, _ *rand.Rand) float64 {
		gate := pulseGate(beatPhase, float64(complexity)/2)
		return 0.5 * gate * Wave(freq, t, ShapeSawtooth)
	},
	BassHollow: func(freq, t, _ float64, _ int, _ *rand.Rand) float64 {
		fade := math.Max(0.4, 1-t/60)
		return 0.25 * fade * Wave(freq, t, ShapeSine)
	},
	BassSolid: func(freq, t, beatPhase float64, _ int, _ *rand.Rand) float64 {
		accent := 0.8 + 0.2*math.Cos(2*math.Pi*beatFrac(beatPhase))
		return 0.4 * accent * Wave(freq, t, ShapeTriangle)
	},
	BassWarm: func(freq, t, _ float64, _ int, _ *rand.Rand) float64 {
		env := 0.75 + 0.25*math.Sin(2*math.Pi*0.05*t)
		return 0.45 * env * Wave(freq, t, ShapeSine)
	},
}

// bassFor resolves a style to its generator, falling back to the calm
// gentle bass for unknown styles.
func bassFor(style BassStyle) bassFunc {
	if fn, ok := bassFuncs[style]; ok {
		return fn
	}
	return bassFuncs[BassGentle]
}
