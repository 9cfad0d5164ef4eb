// Package frequency implements "Frequency Rescue": the Y2K mission to
// restore the seven healing frequencies before midnight wipes them
// from the party's master archive.
package frequency

import (
	"fmt"

	"github.com/morningparty/frequency-rescue/internal/character"
	"github.com/morningparty/frequency-rescue/internal/engine"
	"github.com/morningparty/frequency-rescue/internal/registry"
)

// Screen IDs. The set is closed; kinds() declares it exhaustively.
const (
	ScreenIntro         engine.ScreenID = "intro"
	ScreenMap           engine.ScreenID = "map"
	ScreenSoundDome     engine.ScreenID = "soundDome"
	ScreenBreathTemple  engine.ScreenID = "breathTemple"
	ScreenHydrationWell engine.ScreenID = "hydrationWell"
	ScreenLightGarden   engine.ScreenID = "lightGarden"
	ScreenPlungeCove    engine.ScreenID = "plungeCove"
	ScreenEchoChamber   engine.ScreenID = "echoChamber"
	ScreenStarDeck      engine.ScreenID = "starDeck"
	ScreenConsole       engine.ScreenID = "console"
	ScreenReview        engine.ScreenID = "review"
	ScreenEnding        engine.ScreenID = "ending"
)

const (
	startMinute    = 23*60 + 30 // 11:30 PM
	deadlineMinute = 24 * 60    // midnight
)

func init() {
	registry.Register("frequency", New)
}

// New builds the Frequency Rescue story module.
func New() *engine.Story {
	return &engine.Story{
		ID:    "frequency",
		Title: "Frequency Rescue",
		Tag:   "Restore the seven healing frequencies before Y2K erases them",

		Intro:  ScreenIntro,
		Hub:    ScreenMap,
		Ending: ScreenEnding,
		Kinds:  kinds(),

		StartMinute:    startMinute,
		DeadlineMinute: deadlineMinute,

		Rules:   rules(),
		Items:   items(),
		Screens: lookup,
	}
}

func kinds() map[engine.ScreenID]engine.ScreenKind {
	return map[engine.ScreenID]engine.ScreenKind{
		ScreenIntro:         engine.KindStandard,
		ScreenMap:           engine.KindHub,
		ScreenSoundDome:     engine.KindStandard,
		ScreenBreathTemple:  engine.KindStandard,
		ScreenHydrationWell: engine.KindStandard,
		ScreenLightGarden:   engine.KindStandard,
		ScreenPlungeCove:    engine.KindStandard,
		ScreenEchoChamber:   engine.KindStandard,
		ScreenStarDeck:      engine.KindStandard,
		ScreenConsole:       engine.KindConsole,
		ScreenReview:        engine.KindReview,
		ScreenEnding:        engine.KindEnding,
	}
}

// builder produces a screen definition from the current state. Text
// interpolation (counts, checkmarks, the clock) happens here; state
// is read, never written.
type builder func(s engine.State, hero character.Character) engine.Screen

var screens = map[engine.ScreenID]builder{
	ScreenIntro:         introScreen,
	ScreenMap:           mapScreen,
	ScreenSoundDome:     soundDomeScreen,
	ScreenBreathTemple:  breathTempleScreen,
	ScreenHydrationWell: hydrationWellScreen,
	ScreenLightGarden:   lightGardenScreen,
	ScreenPlungeCove:    plungeCoveScreen,
	ScreenEchoChamber:   echoChamberScreen,
	ScreenStarDeck:      starDeckScreen,
	ScreenConsole:       consoleScreen,
	ScreenReview:        reviewScreen,
	ScreenEnding:        endingScreen,
}

func lookup(id engine.ScreenID, s engine.State, hero character.Character) (engine.Screen, bool) {
	b, ok := screens[id]
	if !ok {
		return engine.Screen{}, false
	}
	return b(s, hero), true
}

func introScreen(_ engine.State, hero character.Character) engine.Screen {
	return engine.Screen{
		ID:    ScreenIntro,
		Kind:  engine.KindStandard,
		Title: "DECEMBER 31, 1999 - 11:30 PM",
		Mood:  "midnight",
		Lines: []string{
			"The Morning Party's millennium edition is minutes away, and the master frequency archive is dying.",
			"The Y2K bug has chewed through the server that holds the seven healing frequencies.",
			"At midnight the archive zeroes out. Sound healing, gone. Forever.",
			"Johny Dar pulls you aside, eyes wild under the strobes.",
			fmt.Sprintf("\"%s. You're the only one who can re-record the seven tones from the party stations.\"", hero.Name),
			"\"Start with the 174 Hz anchor at the Sound Dome. Nothing holds without the anchor.\"",
			"\"Upload them all to the master console before the clock strikes twelve. GO!\"",
		},
		Choices: []engine.Choice{
			{Label: "Open the frequency map", Destination: ScreenMap},
		},
	}
}

func mapScreen(s engine.State, _ character.Character) engine.Screen {
	restored := s.Inventory.CountCategory(engine.CategoryFrequency)
	lines := []string{
		"The party map glows across your wristband, stations pulsing like a circuit board.",
		fmt.Sprintf("Frequencies restored: %d/%d.", restored, len(AllFrequencies)),
		fmt.Sprintf("The archive dies at midnight. It is now %s.", engine.FormatClock(s.Minute)),
	}
	return engine.Screen{
		ID:    ScreenMap,
		Kind:  engine.KindHub,
		Title: "FREQUENCY MAP",
		Mood:  "neon",
		Lines: lines,
		Choices: []engine.Choice{
			{Label: station(s, "Sound Dome - 174 Hz anchor", Freq174), Destination: ScreenSoundDome},
			{Label: station(s, "Breath Temple - 285 Hz", Freq285), Destination: ScreenBreathTemple},
			{Label: station(s, "Hydration Well - 528 Hz", Freq528), Destination: ScreenHydrationWell},
			{Label: station(s, "Light Garden - 852 Hz", Freq852), Destination: ScreenLightGarden},
			{Label: station(s, "Plunge Cove - 396 Hz", Freq396), Destination: ScreenPlungeCove},
			{Label: station(s, "Echo Chamber - 639 Hz", Freq639), Destination: ScreenEchoChamber},
			{Label: station(s, "Star Deck - 963 Hz", Freq963), Destination: ScreenStarDeck},
			{Label: "Master console", Destination: ScreenConsole},
			{Label: "Review your mission", Destination: ScreenReview},
		},
	}
}

// station marks already-restored frequencies on the map.
func station(s engine.State, label string, f engine.Item) string {
	if s.Inventory.Has(f) {
		return label + " ✓"
	}
	return label
}

func soundDomeScreen(_ engine.State, hero character.Character) engine.Screen {
	return engine.Screen{
		ID:    ScreenSoundDome,
		Kind:  engine.KindStandard,
		Title: "SOUND DOME",
		Mood:  "deep",
		Lines: []string{
			"Inside the geodesic dome, gong master Ituha kneels beside a cracked subwoofer.",
			"\"The anchor tone. 174 hertz. The floor of the whole lattice.\"",
			"\"The server forgot it first - low tones always go first.\"",
			fmt.Sprintf("\"Hold the recorder steady, %s. The dome remembers, even if the machines don't.\"", hero.Name),
		},
		Choices: []engine.Choice{
			{Label: "Record the 174 Hz anchor", Destination: ScreenSoundDome, Grants: []engine.Item{Freq174}},
			{Label: "Back to the map", Destination: ScreenMap},
		},
	}
}

func breathTempleScreen(_ engine.State, _ character.Character) engine.Screen {
	return engine.Screen{
		ID:    ScreenBreathTemple,
		Kind:  engine.KindStandard,
		Title: "BREATH TEMPLE",
		Mood:  "mist",
		Lines: []string{
			"Forty people exhale in unison and the canvas walls bow outward.",
			"Sister Ola doesn't open her eyes. \"285 hertz. The mender. It rides on the breath.\"",
			"\"It will only bind to a lattice that already has its floor.\"",
			"\"Breathe with us first, or just take the tone and run. Midnight doesn't judge.\"",
		},
		Choices: []engine.Choice{
			{Label: "Record the 285 Hz tone", Destination: ScreenBreathTemple, Grants: []engine.Item{Freq285}},
			{Label: "Join one breathwork round", Destination: ScreenBreathTemple, Grants: []engine.Item{ExpBreathwork}, Stay: true},
			{Label: "Back to the map", Destination: ScreenMap},
		},
	}
}

func hydrationWellScreen(_ engine.State, _ character.Character) engine.Screen {
	return engine.Screen{
		ID:    ScreenHydrationWell,
		Kind:  engine.KindStandard,
		Title: "HYDRATION WELL",
		Mood:  "aqua",
		Lines: []string{
			"Copper pipes drip glacier water over a singing bowl tuned to the miracle tone.",
			"The well keeper slides you a glass jar. \"528. The one the flower children wouldn't shut up about.\"",
			"\"Water carries it better than wire. That's why the server lost it and my well didn't.\"",
			"\"Take a Prana Elixir for the road. You look like a man chased by a calendar.\"",
		},
		Choices: []engine.Choice{
			{Label: "Record the 528 Hz miracle tone", Destination: ScreenHydrationWell, Grants: []engine.Item{Freq528}},
			{Label: "Accept the Prana Elixir", Destination: ScreenHydrationWell, Grants: []engine.Item{DrinkPrana}, Stay: true},
			{Label: "Back to the map", Destination: ScreenMap},
		},
	}
}

func lightGardenScreen(_ engine.State, _ character.Character) engine.Screen {
	return engine.Screen{
		ID:    ScreenLightGarden,
		Kind:  engine.KindStandard,
		Title: "LIGHT GARDEN",
		Mood:  "violet",
		Lines: []string{
			"Ultraviolet vines climb scaffolding; every leaf hums faintly at 852.",
			"The gardener taps a tuning fork against a grow lamp. \"Intuition's tone. Hear it?\"",
			"\"Planted these the day they announced the millennium bug. Plants don't do two-digit years.\"",
			"\"Record it quick - the generators switch over at midnight and who knows what survives that.\"",
		},
		Choices: []engine.Choice{
			{Label: "Record the 852 Hz tone", Destination: ScreenLightGarden, Grants: []engine.Item{Freq852}},
			{Label: "Back to the map", Destination: ScreenMap},
		},
	}
}

func plungeCoveScreen(_ engine.State, hero character.Character) engine.Screen {
	return engine.Screen{
		ID:    ScreenPlungeCove,
		Kind:  engine.KindStandard,
		Title: "PLUNGE COVE",
		Mood:  "ice",
		Lines: []string{
			"Steam rolls off three ice baths lined with candles. Somebody is screaming, happily.",
			"Coach Brekk slaps the water. \"396! Fear drops out of the body at 396!\"",
			"\"But it's a high-lattice tone. It needs one of the middle family under it or it just sounds like a fridge.\"",
			fmt.Sprintf("\"In or out, %s! The ice doesn't care what year it is!\"", hero.Name),
		},
		Choices: []engine.Choice{
			{Label: "Record the 396 Hz tone", Destination: ScreenPlungeCove, Grants: []engine.Item{Freq396}},
			{Label: "Take the ice plunge", Destination: ScreenPlungeCove, Grants: []engine.Item{ExpIcePlunge}, Stay: true},
			{Label: "Back to the map", Destination: ScreenMap},
		},
	}
}

func echoChamberScreen(_ engine.State, _ character.Character) engine.Screen {
	return engine.Screen{
		ID:    ScreenEchoChamber,
		Kind:  engine.KindStandard,
		Title: "ECHO CHAMBER",
		Mood:  "dusk",
		Lines: []string{
			"A concrete stairwell repurposed as an instrument. Two strangers hum a chord and it hangs for eleven seconds.",
			"\"639,\" whispers the chamber host. \"The tone that ties people together.\"",
			"\"It needs a middle tone underneath or the echo eats it.\"",
			"\"There's kombucha in the cooler. House rule: nobody records thirsty.\"",
		},
		Choices: []engine.Choice{
			{Label: "Record the 639 Hz tone", Destination: ScreenEchoChamber, Grants: []engine.Item{Freq639}},
			{Label: "Grab a Kombucha Kurse", Destination: ScreenEchoChamber, Grants: []engine.Item{DrinkKombucha}, Stay: true},
			{Label: "Back to the map", Destination: ScreenMap},
		},
	}
}

func starDeckScreen(_ engine.State, _ character.Character) engine.Screen {
	return engine.Screen{
		ID:    ScreenStarDeck,
		Kind:  engine.KindStandard,
		Title: "STAR DECK",
		Mood:  "cosmos",
		Lines: []string{
			"The rooftop deck is silent except for wind and one crystal bowl ringing at the crown tone.",
			"An astronomer in a party hat checks her watch. \"963. The highest rung. I saved it for last on purpose.\"",
			"\"It won't sit on an empty lattice. Bring it a middle tone to stand on.\"",
			"\"Ninety-four minutes of 1999 left. Make them count.\"",
		},
		Choices: []engine.Choice{
			{Label: "Record the 963 Hz crown tone", Destination: ScreenStarDeck, Grants: []engine.Item{Freq963}},
			{Label: "Back to the map", Destination: ScreenMap},
		},
	}
}

func consoleScreen(s engine.State, _ character.Character) engine.Screen {
	restored := s.Inventory.CountCategory(engine.CategoryFrequency)
	complete := s.Inventory.HasAll(AllFrequencies...)

	lines := []string{
		"The master console fills a shipping container: tape decks, a humming server rack, one enormous red button.",
		"A CRT scrolls the same line over and over: ARCHIVE INTEGRITY FAILING … 00:00:00 PURGE SCHEDULED.",
	}
	choices := []engine.Choice{}
	if complete {
		lines = append(lines,
			"The input meters light up green, all seven. The console is ready.",
			"One press and the lattice uploads. The frequencies live.",
		)
		choices = append(choices, engine.Choice{Label: "Begin the upload", Destination: ScreenEnding})
	} else {
		lines = append(lines,
			fmt.Sprintf("The console blinks: SEQUENCE INCOMPLETE (%d/%d).", restored, len(AllFrequencies)),
			"It will not accept a partial lattice. The missing tones are still out there.",
		)
	}
	choices = append(choices, engine.Choice{Label: "Back to the map", Destination: ScreenMap})

	return engine.Screen{
		ID:      ScreenConsole,
		Kind:    engine.KindConsole,
		Title:   "MASTER CONSOLE",
		Mood:    "terminal",
		Lines:   lines,
		Choices: choices,
	}
}

func reviewScreen(s engine.State, hero character.Character) engine.Screen {
	lines := []string{
		fmt.Sprintf("%s's mission ledger, %s:", hero.Name, engine.FormatClock(s.Minute)),
	}
	for _, f := range AllFrequencies {
		mark := "✗"
		if s.Inventory.Has(f) {
			mark = "✓"
		}
		lines = append(lines, fmt.Sprintf("  %s %s Hz", mark, f.Key))
	}
	if n := s.Inventory.CountCategory(engine.CategoryDrink) + s.Inventory.CountCategory(engine.CategoryExperience); n > 0 {
		lines = append(lines, fmt.Sprintf("Side quests enjoyed: %d. Wellness is a journey, not a deadline. The deadline disagrees.", n))
	}
	return engine.Screen{
		ID:    ScreenReview,
		Kind:  engine.KindReview,
		Title: "MISSION REVIEW",
		Mood:  "paper",
		Lines: lines,
		Choices: []engine.Choice{
			{Label: "Back to the map", Destination: ScreenMap},
			{Label: "Go to the master console", Destination: ScreenConsole},
		},
	}
}

func endingScreen(s engine.State, hero character.Character) engine.Screen {
	return engine.Screen{
		ID:      ScreenEnding,
		Kind:    engine.KindEnding,
		Title:   endingTitle(s.Ending),
		Mood:    endingMood(s.Ending),
		Lines:   endingLines(s.Ending, hero),
		Choices: []engine.Choice{{Label: "Play Again", Destination: ScreenIntro}},
	}
}

func endingTitle(e engine.Ending) string {
	switch e {
	case engine.EndingLegendary:
		return "🌟 LEGENDARY FREQUENCY SAVIOR 🌟"
	case engine.EndingHeroic:
		return "🎉 HEROIC RESCUE 🎉"
	case engine.EndingClutch:
		return "⚡ CLUTCH UPLOAD ⚡"
	case engine.EndingMiracle:
		return "🔥 MIRACLE WORKER 🔥"
	default:
		return "💥 Y2K MELTDOWN 💥"
	}
}

func endingMood(e engine.Ending) string {
	switch e {
	case engine.EndingLegendary:
		return "gold"
	case engine.EndingHeroic:
		return "green"
	case engine.EndingClutch:
		return "orange"
	case engine.EndingMiracle:
		return "red"
	default:
		return "ash"
	}
}

func endingLines(e engine.Ending, hero character.Character) []string {
	switch e {
	case engine.EndingLegendary:
		return []string{
			fmt.Sprintf("%s uploaded the full lattice with time to spare. The seven tones bloom across every speaker at once.", hero.Name),
			"The Morning Party will tell this story for decades: the night the frequencies nearly died and didn't.",
		}
	case engine.EndingHeroic:
		return []string{
			fmt.Sprintf("%s got every tone home with minutes on the clock. The crowd erupts as the archive rebuilds itself.", hero.Name),
			"The DJ rides the 528 into the countdown and the whole rooftop sings along. Hero of Y2K.",
		}
	case engine.EndingClutch:
		return []string{
			fmt.Sprintf("Way too close. The upload bar crawls as the crowd counts down - 3... 2... 1... and %s's lattice lands with the ball drop.", hero.Name),
			"Hearts are still racing. Somebody faints into the hydration well. The frequencies live.",
		}
	case engine.EndingMiracle:
		return []string{
			fmt.Sprintf("SECONDS. %s hit the button with SECONDS left in the millennium. The server gasps, flickers, and holds.", hero.Name),
			"People are crying, screaming, hugging strangers. The most dramatic save in wellness history.",
		}
	default:
		return []string{
			"Midnight. The CRT goes white, then dark. ARCHIVE PURGED.",
			fmt.Sprintf("%s stands in the silence where seven frequencies used to be. History will not remember this kindly.", hero.Name),
		}
	}
}
