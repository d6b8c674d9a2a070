// Package synth renders fixed-length stereo audio purely by
// mathematical synthesis from a small set of musical parameters.
package synth

import (
	"errors"
	"fmt"

	"github.com/rbrindha8-hub/moodtunes/internal/theory"
)

// ErrInvalidTempo is returned when a render is requested with a
// non-positive tempo.
var ErrInvalidTempo = errors.New("tempo must be positive")

// MusicParams fully determines a render. It is never mutated by the
// synthesis pipeline.
type MusicParams struct {
	Tempo  int         // beats per minute
	Key    string      // root note name, optionally with a trailing mode letter ("Em")
	Scale  theory.Mode // major or minor
	Rhythm string      // one of the vibe profile identifiers
}

// Validate checks the parameters that would otherwise fail during
// synthesis. Unknown rhythm identifiers are not an error; they resolve
// to the default profile.
func (p MusicParams) Validate() error {
	if p.Tempo <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTempo, p.Tempo)
	}
	if _, err := theory.NoteIndex(theory.KeyRoot(p.Key)); err != nil {
		return fmt.Errorf("validating key %q: %w", p.Key, err)
	}
	return nil
}
