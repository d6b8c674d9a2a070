package synth

import "math"

// melodySpec describes how a melody style picks and voices notes. The
// melody cycles through the scale at a rate proportional to tempo and
// the style's speed multiplier.
type melodySpec struct {
	shape       Shape
	speed       float64 // note cycling multiplier relative to the beat
	octave      int     // base octave, 4 or 5
	amp         float64
	wobbleDepth float64 // multiplicative frequency wobble for bends/waver
	wobbleRate  float64 // Hz
	exprRate    float64 // Hz of the slow expressive amplitude sinusoid
	lift        bool    // shift up an octave every four measures
}

var melodySpecs = map[MelodyStyle]melodySpec{
	MelodyDancing:     {shape: ShapeTriangle, speed: 2.0, octave: 4, amp: 0.3, exprRate: 2},
	MelodySorrowful:   {shape: ShapeSine, speed: 0.3, octave: 4, amp: 0.25, wobbleDepth: 0.012, wobbleRate: 5, exprRate: 0.2},
	MelodySoaring:     {shape: ShapeSawtooth, speed: 1.5, octave: 4, amp: 0.3, exprRate: 0.5, lift: true},
	MelodyFloating:    {shape: ShapeSine, speed: 0.5, octave: 5, amp: 0.22, exprRate: 0.15},
	MelodyUncertain:   {shape: ShapeTriangle, speed: 0.8, octave: 4, amp: 0.24, wobbleDepth: 0.02, wobbleRate: 6.5, exprRate: 0.7},
	MelodyLullaby:     {shape: ShapeSine, speed: 0.4, octave: 5, amp: 0.2, exprRate: 0.12},
	MelodyCelebrating: {shape: ShapeSawtooth, speed: 3.0, octave: 4, amp: 0.3, exprRate: 1.5, lift: true},
	MelodyLonging:     {shape: ShapeSine, speed: 0.35, octave: 4, amp: 0.22, wobbleDepth: 0.006, wobbleRate: 3, exprRate: 0.18},
	MelodyPrecise:     {shape: ShapeTriangle, speed: 1.0, octave: 4, amp: 0.25, exprRate: 1},
	MelodyTender:      {shape: ShapeSine, speed: 0.6, octave: 4, amp: 0.22, exprRate: 0.25},
}

// melodySpecFor resolves a style, falling back to the calm floating
// melody for unknown styles.
func melodySpecFor(style MelodyStyle) melodySpec {
	if s, ok := melodySpecs[style]; ok {
		return s
	}
	return melodySpecs[MelodyFloating]
}

// melodyVoice holds everything the melody layer needs per sample. Scale
// note frequencies are precomputed for octaves 4-6 so the hot loop does
// no name lookups.
type melodyVoice struct {
	spec       melodySpec
	freqs      [3][7]float64 // [octave-4][degree]
	notesPerSec float64
	measureLen float64
}

func (v *melodyVoice) sample(t float64) float64 {
	idx := int(t*v.notesPerSec) % 7
	oct := v.spec.octave
	if v.spec.lift && int(t/(4*v.measureLen))%2 == 1 {
		oct++
	}

	freq := v.freqs[oct-4][idx]
	if v.spec.wobbleDepth > 0 {
		freq *= 1 + v.spec.wobbleDepth*math.Sin(2*math.Pi*v.spec.wobbleRate*t)
	}

	amp := v.spec.amp * (0.75 + 0.25*math.Sin(2*math.Pi*v.spec.exprRate*t))
	return amp * Wave(freq, t, v.spec.shape)
}
