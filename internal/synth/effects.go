package synth

import (
	"math"
	"math/rand"
)

// effectFunc is a stateless per-sample transform. Effects run in the
// profile's list order, each consuming the previous effect's output.
type effectFunc func(sample, t, rootFreq float64, tempo int, rng *rand.Rand) float64

// effectFuncs names every transform used across the vibe profiles.
// An unrecognized effect name is a no-op, never an error.
var effectFuncs = map[string]effectFunc{
	// Additive high-frequency shimmer.
	"sparkle": func(s, t, rootFreq float64, _ int, _ *rand.Rand) float64 {
		return s + 0.05*math.Sin(2*math.Pi*rootFreq*8*t)
	},
	// Tempo-synced amplitude gating.
	"bounce": func(s, t, _ float64, tempo int, _ *rand.Rand) float64 {
		return s * (0.7 + 0.3*math.Abs(math.Sin(2*math.Pi*float64(tempo)/60*t)))
	},
	// Phase-shifted additive taps.
	"reverb": func(s, t, rootFreq float64, _ int, _ *rand.Rand) float64 {
		return s + 0.25*math.Sin(2*math.Pi*rootFreq*(t-0.07)) + 0.12*math.Sin(2*math.Pi*rootFreq*(t-0.15))
	},
	// Slow weeping amplitude fall and swell.
	"tears": func(s, t, _ float64, _ int, _ *rand.Rand) float64 {
		return s * (0.8 + 0.2*math.Sin(2*math.Pi*0.3*t-math.Pi/2))
	},
	// Soft saturation.
	"distortion": func(s, _, _ float64, _ int, _ *rand.Rand) float64 {
		return math.Tanh(s*3) * 0.8
	},
	// Tempo-synced on/off throb.
	"pulse": func(s, t, _ float64, tempo int, _ *rand.Rand) float64 {
		if math.Mod(t*float64(tempo)/60, 1) < 0.5 {
			return s
		}
		return s * 0.6
	},
	// Slow rolling amplitude swell.
	"wave": func(s, t, _ float64, _ int, _ *rand.Rand) float64 {
		return s * (0.75 + 0.25*math.Sin(2*math.Pi*0.2*t))
	},
	// Gentler, offset swell layered over wave.
	"breath": func(s, t, _ float64, _ int, _ *rand.Rand) float64 {
		return s * (0.85 + 0.15*math.Sin(2*math.Pi*0.25*t+math.Pi/3))
	},
	// Rapid shallow tremolo.
	"flutter": func(s, t, _ float64, _ int, _ *rand.Rand) float64 {
		return s * (0.9 + 0.1*math.Sin(2*math.Pi*8*t))
	},
	// Periodic amplitude notch near the end of every fourth beat.
	"hesitate": func(s, t, _ float64, tempo int, _ *rand.Rand) float64 {
		if math.Mod(t*float64(tempo)/60, 4) > 3.6 {
			return s * 0.2
		}
		return s
	},
	// Quiet overall with a faint airy overtone.
	"whisper": func(s, t, rootFreq float64, _ int, _ *rand.Rand) float64 {
		return s*0.8 + 0.02*math.Sin(2*math.Pi*rootFreq*6*t)
	},
	// Warm additive octave.
	"glow": func(s, t, rootFreq float64, _ int, _ *rand.Rand) float64 {
		return s + 0.08*math.Sin(2*math.Pi*rootFreq*2*t)
	},
	// Amplitude surge at the top of each measure.
	"burst": func(s, t, _ float64, tempo int, _ *rand.Rand) float64 {
		swell := math.Max(0, math.Sin(2*math.Pi*float64(tempo)/240*t))
		return s * (1 + 0.3*math.Pow(swell, 8))
	},
	// Small stochastic jitter; the only effect needing the noise source.
	"fizz": func(s, _, _ float64, _ int, rng *rand.Rand) float64 {
		return s + 0.03*(rng.Float64()*2-1)
	},
	// Slow, distant additive tap.
	"drift": func(s, t, rootFreq float64, _ int, _ *rand.Rand) float64 {
		return s + 0.1*math.Sin(2*math.Pi*rootFreq*(t-0.3))
	},
	// Louder, longer echo of drift.
	"memory": func(s, t, rootFreq float64, _ int, _ *rand.Rand) float64 {
		return s*0.8 + 0.2*math.Sin(2*math.Pi*rootFreq*(t-0.5))
	},
	// Hard amplitude clamp.
	"focus": func(s, _, _ float64, _ int, _ *rand.Rand) float64 {
		return clamp(s, -0.8, 0.8)
	},
	// Power-law edge emphasis.
	"sharp": func(s, _, _ float64, _ int, _ *rand.Rand) float64 {
		return math.Copysign(math.Pow(math.Abs(s), 0.8), s)
	},
	// Power-law softening.
	"caress": func(s, _, _ float64, _ int, _ *rand.Rand) float64 {
		return math.Copysign(math.Pow(math.Abs(s), 1.2), s)
	},
	// Gentle saturation.
	"velvet": func(s, _, _ float64, _ int, _ *rand.Rand) float64 {
		return math.Tanh(s*1.5) * 0.85
	},
}

// effectChain resolves a profile's effect names once, dropping unknown
// names so the hot loop carries only real transforms.
func effectChain(names []string) []effectFunc {
	chain := make([]effectFunc, 0, len(names))
	for _, name := range names {
		if fn, ok := effectFuncs[name]; ok {
			chain = append(chain, fn)
		}
	}
	return chain
}

// applyEffects runs the chain in order, cumulatively.
func applyEffects(chain []effectFunc, s, t, rootFreq float64, tempo int, rng *rand.Rand) float64 {
	for _, fn := range chain {
		s = fn(s, t, rootFreq, tempo, rng)
	}
	return s
}
