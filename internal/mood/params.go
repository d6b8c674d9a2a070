package mood

import (
	"github.com/rbrindha8-hub/moodtunes/internal/synth"
	"github.com/rbrindha8-hub/moodtunes/internal/theory"
)

// paramsTable is the static mood to MusicParams mapping. Keys may carry
// a trailing mode letter; the theory layer uses the leading letter only.
var paramsTable = map[Mood]synth.MusicParams{
	Happy:      {Tempo: 120, Key: "C", Scale: theory.Major, Rhythm: "upbeat"},
	Sad:        {Tempo: 65, Key: "Dm", Scale: theory.Minor, Rhythm: "slow"},
	Energetic:  {Tempo: 140, Key: "E", Scale: theory.Major, Rhythm: "driving"},
	Calm:       {Tempo: 80, Key: "G", Scale: theory.Major, Rhythm: "flowing"},
	Anxious:    {Tempo: 110, Key: "Bm", Scale: theory.Minor, Rhythm: "irregular"},
	Peaceful:   {Tempo: 70, Key: "F", Scale: theory.Major, Rhythm: "gentle"},
	Excited:    {Tempo: 130, Key: "D", Scale: theory.Major, Rhythm: "energetic"},
	Melancholy: {Tempo: 75, Key: "Em", Scale: theory.Minor, Rhythm: "contemplative"},
	Focused:    {Tempo: 90, Key: "Am", Scale: theory.Minor, Rhythm: "steady"},
	Romantic:   {Tempo: 85, Key: "A", Scale: theory.Major, Rhythm: "romantic"},
}

// ParamsFor resolves a mood to its fixed music parameters. Unknown
// moods resolve to the calm entry.
func ParamsFor(m Mood) synth.MusicParams {
	if p, ok := paramsTable[m]; ok {
		return p
	}
	return paramsTable[Calm]
}
