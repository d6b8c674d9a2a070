// Package theory implements twelve-tone equal temperament frequency
// lookup, diatonic scale construction, and the chord progression tables
// used by the synthesis engine.
package theory

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownNote is returned when a note name is not part of the
// chromatic sequence.
var ErrUnknownNote = errors.New("unknown note name")

// Chromatic is the fixed 12-note chromatic sequence. Note indices used
// throughout the package are positions in this slice.
var Chromatic = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Mode is a scale mode (major or minor).
type Mode string

// Supported modes.
const (
	Major Mode = "major"
	Minor Mode = "minor"
)

// referencePitch is A4 in Hz.
const referencePitch = 440.0

// modeIntervals maps each mode to its 7-element semitone pattern from
// the root.
var modeIntervals = map[Mode][7]int{
	Major: {0, 2, 4, 5, 7, 9, 11},
	Minor: {0, 2, 3, 5, 7, 8, 10},
}

// progressions maps each mode to its 4-step sequence of scale degrees:
// I-IV-V-I for major, i-III-vi-i for minor.
var progressions = map[Mode][4]int{
	Major: {0, 3, 4, 0},
	Minor: {0, 2, 5, 0},
}

// NoteIndex returns the 0-11 position of note within the chromatic
// sequence, or ErrUnknownNote.
func NoteIndex(note string) (int, error) {
	for i, n := range Chromatic {
		if n == note {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNote, note)
}

// Frequency returns the equal-tempered frequency of a note at the given
// octave, with A4 = 440 Hz.
func Frequency(note string, octave int) (float64, error) {
	idx, err := NoteIndex(note)
	if err != nil {
		return 0, err
	}
	semis := float64(idx-9)/12.0 + float64(octave-4)
	return referencePitch * math.Pow(2, semis), nil
}

// KeyRoot extracts the root note name from a key identifier. Keys may
// carry a trailing mode letter ("Em", "Am"); only the leading letter is
// used, keeping a sharp sign when present ("F#m" -> "F#").
func KeyRoot(key string) string {
	if key == "" {
		return ""
	}
	if len(key) > 1 && key[1] == '#' {
		return key[:2]
	}
	return key[:1]
}

// BuildScale derives the 7 scale note names for a key and mode by
// applying the mode's interval pattern to the root's chromatic index,
// wrapping modulo 12. Modes other than Minor use the major pattern.
// The key's root must be a valid chromatic note name.
func BuildScale(key string, mode Mode) ([]string, error) {
	root, err := NoteIndex(KeyRoot(key))
	if err != nil {
		return nil, fmt.Errorf("building scale for key %q: %w", key, err)
	}

	intervals := modeIntervals[Major]
	if mode == Minor {
		intervals = modeIntervals[Minor]
	}

	notes := make([]string, len(intervals))
	for i, iv := range intervals {
		notes[i] = Chromatic[(root+iv)%12]
	}
	return notes, nil
}

// Progression returns the fixed 4-step degree sequence for a mode.
// Modes other than Minor resolve to the major progression.
func Progression(mode Mode) [4]int {
	if mode == Minor {
		return progressions[Minor]
	}
	return progressions[Major]
}
