package synth

// BassStyle selects the bass layer generator.
type BassStyle string

// Bass styles, one per vibe profile.
const (
	BassBouncy      BassStyle = "bouncy"
	BassMelancholic BassStyle = "melancholic"
	BassPounding    BassStyle = "pounding"
	BassGentle      BassStyle = "gentle"
	BassRestless    BassStyle = "restless"
	BassSoft        BassStyle = "soft"
	BassJumping     BassStyle = "jumping"
	BassHollow      BassStyle = "hollow"
	BassSolid       BassStyle = "solid"
	BassWarm        BassStyle = "warm"
)

// MelodyStyle selects the melody layer generator.
type MelodyStyle string

// Melody styles, one per vibe profile.
const (
	MelodyDancing     MelodyStyle = "dancing"
	MelodySorrowful   MelodyStyle = "sorrowful"
	MelodySoaring     MelodyStyle = "soaring"
	MelodyFloating    MelodyStyle = "floating"
	MelodyUncertain   MelodyStyle = "uncertain"
	MelodyLullaby     MelodyStyle = "lullaby"
	MelodyCelebrating MelodyStyle = "celebrating"
	MelodyLonging     MelodyStyle = "longing"
	MelodyPrecise     MelodyStyle = "precise"
	MelodyTender      MelodyStyle = "tender"
)

// HarmonyStyle selects the harmony layer generator.
type HarmonyStyle string

// Harmony styles, one per vibe profile.
const (
	HarmonyBright    HarmonyStyle = "bright"
	HarmonyEmotional HarmonyStyle = "emotional"
	HarmonyPowerful  HarmonyStyle = "powerful"
	HarmonyPeaceful  HarmonyStyle = "peaceful"
	HarmonyUnsettled HarmonyStyle = "unsettled"
	HarmonyWarm      HarmonyStyle = "warm"
	HarmonyVibrant   HarmonyStyle = "vibrant"
	HarmonyNostalgic HarmonyStyle = "nostalgic"
	HarmonyClear     HarmonyStyle = "clear"
	HarmonyIntimate  HarmonyStyle = "intimate"
)

// VibeProfile bundles the generator selectors for a rhythm style.
type VibeProfile struct {
	Bass       BassStyle
	Melody     MelodyStyle
	Harmony    HarmonyStyle
	Effects    []string
	Complexity int
}

// DefaultRhythm is the rhythm identifier unknown identifiers resolve to.
const DefaultRhythm = "flowing"

// vibeProfiles is the canonical rhythm style table.
var vibeProfiles = map[string]VibeProfile{
	"upbeat": {
		Bass: BassBouncy, Melody: MelodyDancing, Harmony: HarmonyBright,
		Effects: []string{"sparkle", "bounce"}, Complexity: 4,
	},
	"slow": {
		Bass: BassMelancholic, Melody: MelodySorrowful, Harmony: HarmonyEmotional,
		Effects: []string{"reverb", "tears"}, Complexity: 1,
	},
	"driving": {
		Bass: BassPounding, Melody: MelodySoaring, Harmony: HarmonyPowerful,
		Effects: []string{"distortion", "pulse"}, Complexity: 8,
	},
	"flowing": {
		Bass: BassGentle, Melody: MelodyFloating, Harmony: HarmonyPeaceful,
		Effects: []string{"wave", "breath"}, Complexity: 2,
	},
	"irregular": {
		Bass: BassRestless, Melody: MelodyUncertain, Harmony: HarmonyUnsettled,
		Effects: []string{"flutter", "hesitate"}, Complexity: 5,
	},
	"gentle": {
		Bass: BassSoft, Melody: MelodyLullaby, Harmony: HarmonyWarm,
		Effects: []string{"whisper", "glow"}, Complexity: 1,
	},
	"energetic": {
		Bass: BassJumping, Melody: MelodyCelebrating, Harmony: HarmonyVibrant,
		Effects: []string{"burst", "fizz"}, Complexity: 6,
	},
	"contemplative": {
		Bass: BassHollow, Melody: MelodyLonging, Harmony: HarmonyNostalgic,
		Effects: []string{"drift", "memory"}, Complexity: 1,
	},
	"steady": {
		Bass: BassSolid, Melody: MelodyPrecise, Harmony: HarmonyClear,
		Effects: []string{"focus", "sharp"}, Complexity: 2,
	},
	"romantic": {
		Bass: BassWarm, Melody: MelodyTender, Harmony: HarmonyIntimate,
		Effects: []string{"caress", "velvet"}, Complexity: 3,
	},
}

// ProfileFor returns the vibe profile for a rhythm identifier.
// Unrecognized identifiers resolve to the flowing profile.
func ProfileFor(rhythm string) VibeProfile {
	if p, ok := vibeProfiles[rhythm]; ok {
		return p
	}
	return vibeProfiles[DefaultRhythm]
}

// Rhythms lists the known rhythm identifiers.
func Rhythms() []string {
	names := make([]string, 0, len(vibeProfiles))
	for name := range vibeProfiles {
		names = append(names, name)
	}
	return names
}
