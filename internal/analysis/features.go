// Package analysis extracts audio features from rendered tracks and
// groups a track library by feature similarity using k-means.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/maddyblue/go-dsp/fft"

	"github.com/rbrindha8-hub/moodtunes/internal/synth"
	"github.com/rbrindha8-hub/moodtunes/internal/theory"
)

// fftWindow is the analysis window taken from the middle of the track,
// past the fade-in.
const fftWindow = 8192

// Features is the per-track feature vector used for clustering.
type Features struct {
	Energy     float64 // RMS amplitude of the left channel
	Brightness float64 // spectral centroid normalized by Nyquist
	Tempo      float64 // tempo normalized over the observed 30-200 bpm range
	Minor      float64 // 1 for minor scale renders, 0 otherwise
}

// Extract computes the feature vector for a rendered buffer and the
// parameters that produced it.
func Extract(buf *synth.Buffer, p synth.MusicParams) Features {
	return Features{
		Energy:     rms(buf.Left),
		Brightness: spectralCentroid(midWindow(buf.Left)),
		Tempo:      normalizeTempo(p.Tempo),
		Minor:      minorBit(p.Scale),
	}
}

// FromStored rebuilds a feature vector from persisted track metadata,
// where energy and brightness were computed at render time.
func FromStored(energy, brightness float64, tempo int, mode theory.Mode) Features {
	return Features{
		Energy:     energy,
		Brightness: brightness,
		Tempo:      normalizeTempo(tempo),
		Minor:      minorBit(mode),
	}
}

func rms(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// midWindow slices an analysis window from the middle of the track so
// the fades do not skew the spectrum.
func midWindow(xs []float64) []float64 {
	if len(xs) <= fftWindow {
		return xs
	}
	start := len(xs)/2 - fftWindow/2
	return xs[start : start+fftWindow]
}

// spectralCentroid is the magnitude-weighted mean bin of the spectrum,
// normalized to [0, 1] where 1 is the Nyquist frequency.
func spectralCentroid(window []float64) float64 {
	if len(window) == 0 {
		return 0
	}

	spectrum := fft.FFTReal(window)
	half := len(spectrum) / 2
	if half == 0 {
		return 0
	}

	var weighted, total float64
	for i := 1; i < half; i++ {
		mag := cmplx.Abs(spectrum[i])
		weighted += float64(i) * mag
		total += mag
	}
	if total == 0 {
		return 0
	}
	return weighted / total / float64(half)
}

func normalizeTempo(tempo int) float64 {
	const lo, hi = 30, 200
	t := (float64(tempo) - lo) / (hi - lo)
	return math.Max(0, math.Min(1, t))
}

func minorBit(mode theory.Mode) float64 {
	if mode == theory.Minor {
		return 1
	}
	return 0
}
