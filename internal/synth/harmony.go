package synth

import "math"

// ChordTones holds the root, third, and fifth frequencies of the
// current chord at the harmony octave.
type ChordTones struct {
	Root  float64
	Third float64
	Fifth float64
}

// harmonyFunc produces the harmony layer contribution for one sample:
// a weighted sum of the chord tones shaped by a style envelope.
type harmonyFunc func(tones ChordTones, t float64, tempo int) float64

// triad sums weighted chord tone oscillators. Detune factors close to 1
// shift the third and fifth by a few percent for tension.
func triad(tones ChordTones, t float64, shape Shape, wRoot, wThird, wFifth, detuneThird, detuneFifth float64) float64 {
	return wRoot*Wave(tones.Root, t, shape) +
		wThird*Wave(tones.Third*detuneThird, t, shape) +
		wFifth*Wave(tones.Fifth*detuneFifth, t, shape)
}

var harmonyFuncs = map[HarmonyStyle]harmonyFunc{
	HarmonyBright: func(tones ChordTones, t float64, _ int) float64 {
		env := 0.85 + 0.15*math.Sin(2*math.Pi*0.5*t)
		return 0.3 * env * triad(tones, t, ShapeTriangle, 1, 0.8, 0.6, 1, 1)
	},
	HarmonyEmotional: func(tones ChordTones, t float64, _ int) float64 {
		env := 0.7 + 0.3*math.Sin(2*math.Pi*0.15*t)
		return 0.28 * env * triad(tones, t, ShapeSine, 1, 0.9, 0.7, 1.012, 0.994)
	},
	HarmonyPowerful: func(tones ChordTones, t float64, tempo int) float64 {
		drive := 0.8 + 0.2*math.Sin(2*math.Pi*float64(tempo)/60*t)
		return 0.32 * drive * triad(tones, t, ShapeSawtooth, 1, 0.7, 0.8, 1, 1)
	},
	HarmonyPeaceful: func(tones ChordTones, t float64, _ int) float64 {
		env := 0.8 + 0.2*math.Sin(2*math.Pi*0.1*t)
		return 0.26 * env * triad(tones, t, ShapeSine, 1, 0.7, 0.5, 1, 1)
	},
	HarmonyUnsettled: func(tones ChordTones, t float64, _ int) float64 {
		env := 0.75 + 0.25*math.Sin(2*math.Pi*0.4*t+math.Pi/5)
		return 0.27 * env * triad(tones, t, ShapeTriangle, 1, 0.85, 0.65, 1.018, 1.008)
	},
	HarmonyWarm: func(tones ChordTones, t float64, _ int) float64 {
		env := 0.85 + 0.15*math.Sin(2*math.Pi*0.07*t)
		return 0.28 * env * triad(tones, t, ShapeSine, 1, 0.8, 0.6, 1, 1)
	},
	HarmonyVibrant: func(tones ChordTones, t float64, tempo int) float64 {
		shimmer := 0.75 + 0.25*math.Sin(2*math.Pi*float64(tempo)/120*t)
		return 0.3 * shimmer * triad(tones, t, ShapeTriangle, 1, 0.9, 0.8, 1, 1)
	},
	HarmonyNostalgic: func(tones ChordTones, t float64, _ int) float64 {
		env := 0.7 + 0.3*math.Sin(2*math.Pi*0.12*t)
		return 0.26 * env * triad(tones, t, ShapeSine, 1, 0.85, 0.6, 0.991, 1.006)
	},
	HarmonyClear: func(tones ChordTones, t float64, _ int) float64 {
		return 0.28 * triad(tones, t, ShapeSine, 1, 0.75, 0.55, 1, 1)
	},
	HarmonyIntimate: func(tones ChordTones, t float64, _ int) float64 {
		env := 0.8 + 0.2*math.Sin(2*math.Pi*0.06*t+math.Pi/4)
		return 0.25 * env * triad(tones, t, ShapeSine, 1, 0.9, 0.65, 1, 1)
	},
}

// harmonyFor resolves a style to its generator, falling back to the
// calm peaceful harmony for unknown styles.
func harmonyFor(style HarmonyStyle) harmonyFunc {
	if fn, ok := harmonyFuncs[style]; ok {
		return fn
	}
	return harmonyFuncs[HarmonyPeaceful]
}
