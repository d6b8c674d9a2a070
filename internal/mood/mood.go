// Package mood classifies free text into one of ten mood categories and
// resolves each mood to the music parameters that drive a render.
package mood

import "strings"

// Mood is one of the ten canonical mood identifiers.
type Mood string

// The canonical moods.
const (
	Happy      Mood = "happy"
	Sad        Mood = "sad"
	Energetic  Mood = "energetic"
	Calm       Mood = "calm"
	Anxious    Mood = "anxious"
	Peaceful   Mood = "peaceful"
	Excited    Mood = "excited"
	Melancholy Mood = "melancholy"
	Focused    Mood = "focused"
	Romantic   Mood = "romantic"
)

// All lists the canonical moods in a stable order.
var All = []Mood{
	Happy, Sad, Energetic, Calm, Anxious,
	Peaceful, Excited, Melancholy, Focused, Romantic,
}

// keywords maps each mood to the words scored during classification.
var keywords = map[Mood][]string{
	Happy:      {"happy", "joy", "joyful", "glad", "cheerful", "sunny", "smile", "smiling", "delighted", "wonderful", "great"},
	Sad:        {"sad", "unhappy", "down", "blue", "crying", "cry", "tears", "heartbroken", "grief", "lonely", "miserable"},
	Energetic:  {"energetic", "energy", "pumped", "power", "powerful", "strong", "intense", "workout", "running", "driving"},
	Calm:       {"calm", "relaxed", "relax", "chill", "easy", "mellow", "breeze", "quiet", "still", "unwind"},
	Anxious:    {"anxious", "nervous", "worried", "worry", "stress", "stressed", "tense", "uneasy", "restless", "panic"},
	Peaceful:   {"peaceful", "peace", "serene", "tranquil", "gentle", "soft", "soothing", "meditation", "zen"},
	Excited:    {"excited", "excitement", "thrilled", "celebrate", "celebration", "party", "amazing", "awesome", "hyped"},
	Melancholy: {"melancholy", "wistful", "nostalgia", "nostalgic", "bittersweet", "longing", "memories", "remember", "autumn"},
	Focused:    {"focused", "focus", "concentrate", "concentration", "study", "studying", "work", "deep", "flow", "coding"},
	Romantic:   {"romantic", "romance", "love", "loving", "tender", "sweetheart", "darling", "kiss", "valentine", "heart"},
}

// Classify scores text against the keyword table and returns the best
// mood with a confidence in (0, 1]. Text with no keyword hits resolves
// to Calm with low confidence; this is the documented fallback, not an
// error.
func Classify(text string) (Mood, float64) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z')
	})

	scores := make(map[Mood]int)
	total := 0
	for _, w := range words {
		for m, list := range keywords {
			for _, kw := range list {
				if w == kw {
					scores[m]++
					total++
				}
			}
		}
	}

	if total == 0 {
		return Calm, 0.3
	}

	best := Calm
	bestScore := 0
	for _, m := range All {
		if scores[m] > bestScore {
			best = m
			bestScore = scores[m]
		}
	}
	return best, float64(bestScore) / float64(total)
}
