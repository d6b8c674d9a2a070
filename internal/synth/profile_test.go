package synth

import (
	"reflect"
	"testing"
)

func TestProfileFor(t *testing.T) {
	tests := []struct {
		rhythm   string
		expected VibeProfile
	}{
		{
			rhythm: "upbeat",
			expected: VibeProfile{
				Bass: BassBouncy, Melody: MelodyDancing, Harmony: HarmonyBright,
				Effects: []string{"sparkle", "bounce"}, Complexity: 4,
			},
		},
		{
			rhythm: "slow",
			expected: VibeProfile{
				Bass: BassMelancholic, Melody: MelodySorrowful, Harmony: HarmonyEmotional,
				Effects: []string{"reverb", "tears"}, Complexity: 1,
			},
		},
		{
			rhythm: "driving",
			expected: VibeProfile{
				Bass: BassPounding, Melody: MelodySoaring, Harmony: HarmonyPowerful,
				Effects: []string{"distortion", "pulse"}, Complexity: 8,
			},
		},
		{
			rhythm: "flowing",
			expected: VibeProfile{
				Bass: BassGentle, Melody: MelodyFloating, Harmony: HarmonyPeaceful,
				Effects: []string{"wave", "breath"}, Complexity: 2,
			},
		},
		{
			rhythm: "irregular",
			expected: VibeProfile{
				Bass: BassRestless, Melody: MelodyUncertain, Harmony: HarmonyUnsettled,
				Effects: []string{"flutter", "hesitate"}, Complexity: 5,
			},
		},
		{
			rhythm: "gentle",
			expected: VibeProfile{
				Bass: BassSoft, Melody: MelodyLullaby, Harmony: HarmonyWarm,
				Effects: []string{"whisper", "glow"}, Complexity: 1,
			},
		},
		{
			rhythm: "energetic",
			expected: VibeProfile{
				Bass: BassJumping, Melody: MelodyCelebrating, Harmony: HarmonyVibrant,
				Effects: []string{"burst", "fizz"}, Complexity: 6,
			},
		},
		{
			rhythm: "contemplative",
			expected: VibeProfile{
				Bass: BassHollow, Melody: MelodyLonging, Harmony: HarmonyNostalgic,
				Effects: []string{"drift", "memory"}, Complexity: 1,
			},
		},
		{
			rhythm: "steady",
			expected: VibeProfile{
				Bass: BassSolid, Melody: MelodyPrecise, Harmony: HarmonyClear,
				Effects: []string{"focus", "sharp"}, Complexity: 2,
			},
		},
		{
			rhythm: "romantic",
			expected: VibeProfile{
				Bass: BassWarm, Melody: MelodyTender, Harmony: HarmonyIntimate,
				Effects: []string{"caress", "velvet"}, Complexity: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.rhythm, func(t *testing.T) {
			got := ProfileFor(tt.rhythm)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ProfileFor(%q) = %+v, want %+v", tt.rhythm, got, tt.expected)
			}
		})
	}
}

func TestProfileForUnknownRhythm(t *testing.T) {
	flowing := ProfileFor("flowing")
	for _, rhythm := range []string{"", "bogus", "UPBEAT"} {
		if got := ProfileFor(rhythm); !reflect.DeepEqual(got, flowing) {
			t.Errorf("ProfileFor(%q) = %+v, want flowing profile", rhythm, got)
		}
	}
}

func TestEveryProfileEffectIsImplemented(t *testing.T) {
	for _, rhythm := range Rhythms() {
		for _, name := range ProfileFor(rhythm).Effects {
			if _, ok := effectFuncs[name]; !ok {
				t.Errorf("profile %q names unimplemented effect %q", rhythm, name)
			}
		}
	}
}

func TestEveryProfileStyleHasGenerator(t *testing.T) {
	for _, rhythm := range Rhythms() {
		p := ProfileFor(rhythm)
		if _, ok := bassFuncs[p.Bass]; !ok {
			t.Errorf("profile %q has no bass generator for style %q", rhythm, p.Bass)
		}
		if _, ok := harmonyFuncs[p.Harmony]; !ok {
			t.Errorf("profile %q has no harmony generator for style %q", rhythm, p.Harmony)
		}
		if _, ok := melodySpecs[p.Melody]; !ok {
			t.Errorf("profile %q has no melody spec for style %q", rhythm, p.Melody)
		}
	}
}
