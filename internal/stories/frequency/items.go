package frequency

import "github.com/morningparty/frequency-rescue/internal/engine"

// The seven solfeggio frequencies form a dependency lattice: the 174
// Hz anchor has no prerequisite, the family-6 tones need the anchor,
// and the family-9 tones need at least one family-6 tone. Drinks and
// experiences are free pickups.
var (
	Freq174 = engine.Item{Category: engine.CategoryFrequency, Key: "174"}
	Freq285 = engine.Item{Category: engine.CategoryFrequency, Key: "285"}
	Freq528 = engine.Item{Category: engine.CategoryFrequency, Key: "528"}
	Freq852 = engine.Item{Category: engine.CategoryFrequency, Key: "852"}
	Freq396 = engine.Item{Category: engine.CategoryFrequency, Key: "396"}
	Freq639 = engine.Item{Category: engine.CategoryFrequency, Key: "639"}
	Freq963 = engine.Item{Category: engine.CategoryFrequency, Key: "963"}

	DrinkPrana    = engine.Item{Category: engine.CategoryDrink, Key: "prana"}
	DrinkKombucha = engine.Item{Category: engine.CategoryDrink, Key: "kombucha"}

	ExpIcePlunge  = engine.Item{Category: engine.CategoryExperience, Key: "ice_plunge"}
	ExpBreathwork = engine.Item{Category: engine.CategoryExperience, Key: "breathwork"}
)

// AllFrequencies lists the seven tones in lattice order: anchor,
// family 6, family 9.
var AllFrequencies = []engine.Item{
	Freq174,
	Freq285, Freq528, Freq852,
	Freq396, Freq639, Freq963,
}

// FamilySix and FamilyNine mirror the star chart's tone families.
var (
	FamilySix  = []engine.Item{Freq285, Freq528, Freq852}
	FamilyNine = []engine.Item{Freq396, Freq639, Freq963}
)

const (
	needAnchor = "The tone wavers and dies. The 174 Hz anchor must sound first - find it at the Sound Dome."
	needSix    = "The recorder screeches static. A family-6 tone (285, 528 or 852 Hz) must be restored before the high tones will hold."
)

func rules() engine.RuleTable {
	t := engine.RuleTable{}
	for _, f := range FamilySix {
		t[f] = engine.Requires(Freq174, needAnchor)
	}
	for _, f := range FamilyNine {
		t[f] = engine.RequiresAny(needSix, FamilySix...)
	}
	return t
}

func items() map[engine.Item]engine.ItemInfo {
	return map[engine.Item]engine.ItemInfo{
		Freq174:       {Glyph: "♪174", Label: "174 Hz Anchor"},
		Freq285:       {Glyph: "♪285", Label: "285 Hz Tone"},
		Freq528:       {Glyph: "♪528", Label: "528 Hz Miracle Tone"},
		Freq852:       {Glyph: "♪852", Label: "852 Hz Tone"},
		Freq396:       {Glyph: "♪396", Label: "396 Hz Tone"},
		Freq639:       {Glyph: "♪639", Label: "639 Hz Tone"},
		Freq963:       {Glyph: "♪963", Label: "963 Hz Crown Tone"},
		DrinkPrana:    {Glyph: "🥤", Label: "Prana Elixir"},
		DrinkKombucha: {Glyph: "🧉", Label: "Kombucha Kurse"},
		ExpIcePlunge:  {Glyph: "❄️", Label: "Ice Plunge"},
		ExpBreathwork: {Glyph: "🌬️", Label: "Breathwork Session"},
	}
}
