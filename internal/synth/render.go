package synth

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rbrindha8-hub/moodtunes/internal/theory"
)

// Render constants.
const (
	// DefaultSampleRate matches the host audio subsystem's native rate.
	DefaultSampleRate = 44100
	// TrackSeconds is the fixed render duration.
	TrackSeconds = 30.0

	fadeInSeconds  = 2.0
	fadeOutSeconds = 3.0
	minorGain      = 0.7
	chordOctave    = 3

	// renderChunk is the granularity of cancellation and progress
	// reporting within the sample loop.
	renderChunk = 8192
)

// Buffer is a finished stereo render. Samples are in [-1, 1].
type Buffer struct {
	Left       []float64
	Right      []float64
	SampleRate int
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(len(b.Left)) / float64(b.SampleRate)
}

// Renderer drives the per-sample synthesis loop. The zero value renders
// 30 seconds at 44100 Hz on a single worker with a time-based noise
// seed.
type Renderer struct {
	SampleRate int     // 0 means DefaultSampleRate
	Seconds    float64 // 0 means TrackSeconds
	Workers    int     // number of parallel range workers; <= 1 is a single pass

	// Seed seeds the noise source. 0 derives a seed from the clock.
	// With a fixed seed, renders are exactly reproducible for a given
	// worker count; profiles that never touch the noise primitive are
	// reproducible regardless.
	Seed int64

	// Progress, when set, is called after each chunk with cumulative
	// completed and total sample counts. With multiple workers it is
	// called concurrently.
	Progress func(done, total int)
}

// voice is the per-render state resolved once before the sample loop:
// strategy lookups, chord tone frequencies, and timing constants.
type voice struct {
	bass       bassFunc
	harmony    harmonyFunc
	melody     melodyVoice
	chain      []effectFunc
	complexity int

	tempo      int
	beatLen    float64
	measureLen float64
	modeGain   float64

	tones     [4]ChordTones
	fadeOutAt float64
	total     float64
}

// Render synthesizes one track from params. The returned buffer is
// owned by the caller; no state survives the call.
func (r *Renderer) Render(ctx context.Context, p MusicParams) (*Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}

	sampleRate := r.SampleRate
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	seconds := r.Seconds
	if seconds <= 0 {
		seconds = TrackSeconds
	}

	v, err := newVoice(p, seconds)
	if err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}

	n := int(float64(sampleRate) * seconds)
	buf := &Buffer{
		Left:       make([]float64, n),
		Right:      make([]float64, n),
		SampleRate: sampleRate,
	}

	seed := r.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var done atomic.Int64
	report := func(count int) {
		if r.Progress == nil {
			return
		}
		r.Progress(int(done.Add(int64(count))), n)
	}

	workers := r.Workers
	if workers <= 1 {
		rng := rand.New(rand.NewSource(seed))
		if err := v.renderRange(ctx, buf, 0, n, rng, report); err != nil {
			return nil, err
		}
		return buf, nil
	}

	// Samples are pure functions of time, so disjoint index ranges can
	// render concurrently. Each worker owns its own noise source.
	g, gctx := errgroup.WithContext(ctx)
	per := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		from := w * per
		to := min(from+per, n)
		if from >= to {
			break
		}
		rng := rand.New(rand.NewSource(seed + int64(w)))
		g.Go(func() error {
			return v.renderRange(gctx, buf, from, to, rng, report)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}

// newVoice resolves the theory tables and strategy lookups for one
// render.
func newVoice(p MusicParams, seconds float64) (*voice, error) {
	scale, err := theory.BuildScale(p.Key, p.Scale)
	if err != nil {
		return nil, err
	}
	progression := theory.Progression(p.Scale)
	profile := ProfileFor(p.Rhythm)

	beatLen := 60.0 / float64(p.Tempo)
	measureLen := 4 * beatLen

	v := &voice{
		bass:       bassFor(profile.Bass),
		harmony:    harmonyFor(profile.Harmony),
		chain:      effectChain(profile.Effects),
		complexity: profile.Complexity,
		tempo:      p.Tempo,
		beatLen:    beatLen,
		measureLen: measureLen,
		modeGain:   1,
		fadeOutAt:  seconds - fadeOutSeconds,
		total:      seconds,
	}
	if p.Scale == theory.Minor {
		v.modeGain = minorGain
	}

	// Chord tones per measure: root, third, fifth of the progression
	// degree, wrapped modulo the scale length, at the chord octave.
	for m, degree := range progression {
		tones := [3]float64{}
		for j, off := range [3]int{0, 2, 4} {
			note := scale[(degree+off)%len(scale)]
			f, err := theory.Frequency(note, chordOctave)
			if err != nil {
				return nil, err
			}
			tones[j] = f
		}
		v.tones[m] = ChordTones{Root: tones[0], Third: tones[1], Fifth: tones[2]}
	}

	// Melody voice with precomputed scale frequencies for octaves 4-6.
	spec := melodySpecFor(profile.Melody)
	mv := melodyVoice{
		spec:        spec,
		notesPerSec: float64(p.Tempo) / 60 * spec.speed,
		measureLen:  measureLen,
	}
	for oct := 0; oct < 3; oct++ {
		for d, note := range scale {
			f, err := theory.Frequency(note, 4+oct)
			if err != nil {
				return nil, err
			}
			mv.freqs[oct][d] = f
		}
	}
	v.melody = mv

	return v, nil
}

// renderRange fills buf for sample indices [from, to), checking for
// cancellation between chunks.
func (v *voice) renderRange(ctx context.Context, buf *Buffer, from, to int, rng *rand.Rand, report func(int)) error {
	sr := float64(buf.SampleRate)

	for start := from; start < to; start += renderChunk {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(start+renderChunk, to)

		for i := start; i < end; i++ {
			t := float64(i) / sr
			measure := int(t/v.measureLen) % 4
			beatPhase := math.Mod(t, v.measureLen) / v.beatLen
			tones := v.tones[measure]

			raw := v.bass(tones.Root/2, t, beatPhase, v.complexity, rng) +
				v.harmony(tones, t, v.tempo) +
				v.melody.sample(t)

			s := applyEffects(v.chain, raw, t, tones.Root, v.tempo, rng)
			s *= v.envelope(t)
			s *= v.modeGain
			s = math.Tanh(s*0.8) * 0.9

			buf.Left[i] = s
			buf.Right[i] = s * 0.95
		}

		report(end - start)
	}
	return nil
}

// envelope is the global amplitude shape: linear fade-in over the first
// two seconds, linear fade-out over the last three.
func (v *voice) envelope(t float64) float64 {
	if t < fadeInSeconds {
		return t / fadeInSeconds
	}
	if t > v.fadeOutAt {
		return math.Max(0, (v.total-t)/fadeOutSeconds)
	}
	return 1
}
