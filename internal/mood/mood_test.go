package mood

import (
	"testing"

	"github.com/rbrindha8-hub/moodtunes/internal/theory"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Mood
	}{
		{name: "happy text", text: "What a wonderful sunny day, I can't stop smiling", expected: Happy},
		{name: "sad text", text: "Feeling down and lonely, close to tears", expected: Sad},
		{name: "energetic text", text: "Pumped for an intense workout, full of energy", expected: Energetic},
		{name: "anxious text", text: "So nervous and stressed about tomorrow", expected: Anxious},
		{name: "peaceful text", text: "A serene, tranquil morning meditation", expected: Peaceful},
		{name: "excited text", text: "Thrilled! Time to celebrate, this is awesome", expected: Excited},
		{name: "melancholy text", text: "Wistful autumn memories, bittersweet nostalgia", expected: Melancholy},
		{name: "focused text", text: "Deep concentration while studying and coding", expected: Focused},
		{name: "romantic text", text: "Love and tender moments with my sweetheart", expected: Romantic},
		{name: "calm text", text: "Just want to chill and unwind, nice and mellow", expected: Calm},
		{name: "no keywords falls back to calm", text: "the quick brown fox jumps over the lazy dog", expected: Calm},
		{name: "empty text falls back to calm", text: "", expected: Calm},
		{name: "case insensitive", text: "HAPPY HAPPY JOY", expected: Happy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, confidence := Classify(tt.text)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.expected)
			}
			if confidence <= 0 || confidence > 1 {
				t.Errorf("Classify(%q) confidence = %f, want in (0, 1]", tt.text, confidence)
			}
		})
	}
}

func TestClassifyConfidenceReflectsAgreement(t *testing.T) {
	_, pure := Classify("happy happy happy")
	_, mixed := Classify("happy but also sad and lonely")
	if pure != 1 {
		t.Errorf("uniform keyword text confidence = %f, want 1", pure)
	}
	if mixed >= pure {
		t.Errorf("mixed text confidence %f not below uniform confidence %f", mixed, pure)
	}
}

func TestParamsFor(t *testing.T) {
	for _, m := range All {
		p := ParamsFor(m)
		if p.Tempo < 30 || p.Tempo > 200 {
			t.Errorf("ParamsFor(%q).Tempo = %d, outside observed 30-200 range", m, p.Tempo)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("ParamsFor(%q) does not validate: %v", m, err)
		}
	}
}

func TestParamsForHappy(t *testing.T) {
	p := ParamsFor(Happy)
	if p.Tempo != 120 || p.Key != "C" || p.Scale != theory.Major || p.Rhythm != "upbeat" {
		t.Errorf("ParamsFor(Happy) = %+v, want 120/C/major/upbeat", p)
	}
}

func TestParamsForUnknownMood(t *testing.T) {
	calm := ParamsFor(Calm)
	if got := ParamsFor(Mood("confused")); got != calm {
		t.Errorf("ParamsFor(unknown) = %+v, want calm entry %+v", got, calm)
	}
}
