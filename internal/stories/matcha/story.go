// Package matcha implements "Matcha Madness: Y2K Crisis", the
// original Morning Party ingredient hunt: gather the sacred
// ingredients and whisk the legendary matcha drink before midnight.
package matcha

import (
	"fmt"

	"github.com/morningparty/frequency-rescue/internal/character"
	"github.com/morningparty/frequency-rescue/internal/engine"
	"github.com/morningparty/frequency-rescue/internal/registry"
)

const (
	ScreenIntro        engine.ScreenID = "intro"
	ScreenVillage      engine.ScreenID = "village"
	ScreenTeaGardens   engine.ScreenID = "tea_gardens"
	ScreenTropicalCove engine.ScreenID = "tropical_cove"
	ScreenMountainPeak engine.ScreenID = "mountain_peak"
	ScreenIceCaves     engine.ScreenID = "ice_caves"
	ScreenSacredTemple engine.ScreenID = "sacred_temple"
	ScreenEnding       engine.ScreenID = "ending"
)

const (
	startMinute    = 23*60 + 30
	deadlineMinute = 24 * 60
)

func init() {
	registry.Register("matcha", New)
}

// New builds the Matcha Madness story module.
func New() *engine.Story {
	return &engine.Story{
		ID:    "matcha",
		Title: "Matcha Madness: Y2K Crisis",
		Tag:   "Gather the sacred ingredients and save the millennium matcha party",

		Intro:  ScreenIntro,
		Hub:    ScreenVillage,
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
		ScreenIntro:        engine.KindStandard,
		ScreenVillage:      engine.KindHub,
		ScreenTeaGardens:   engine.KindStandard,
		ScreenTropicalCove: engine.KindStandard,
		ScreenMountainPeak: engine.KindStandard,
		ScreenIceCaves:     engine.KindStandard,
		ScreenSacredTemple: engine.KindStandard,
		ScreenEnding:       engine.KindEnding,
	}
}

type builder func(s engine.State, hero character.Character) engine.Screen

var screens = map[engine.ScreenID]builder{
	ScreenIntro:        introScreen,
	ScreenVillage:      villageScreen,
	ScreenTeaGardens:   teaGardensScreen,
	ScreenTropicalCove: tropicalCoveScreen,
	ScreenMountainPeak: mountainPeakScreen,
	ScreenIceCaves:     iceCavesScreen,
	ScreenSacredTemple: sacredTempleScreen,
	ScreenEnding:       endingScreen,
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
			"The world stands on the brink of Y2K. Computers everywhere are expected to crash when the clock strikes midnight.",
			"But there's an even greater crisis at hand: the Millennium Matcha Party is in danger!",
			"The recipe for the legendary matcha drink that would usher in the new millennium has been lost in a computer crash.",
			"Without it, matcha culture could be lost forever!",
			fmt.Sprintf("You, %s, have been chosen to save the party. Your radical dune buggy skills are the only hope!", hero.Name),
			"You must gather the sacred ingredients before midnight strikes!",
		},
		Choices: []engine.Choice{
			{Label: "Head to Zen Village", Destination: ScreenVillage},
		},
	}
}

func villageScreen(_ engine.State, _ character.Character) engine.Screen {
	lines := []string{
		"Master Sencha greets you with urgency in his eyes.",
		"\"Time traveler! You've arrived just in time!\"",
		"\"The Great Matcha Party of '99 is in CRISIS!\"",
		"\"The party's signature drink recipe was lost in a computer crash!\"",
		"\"Without it, the party will be ruined and matcha culture may never recover!\"",
		"\"You must gather the sacred ingredients before midnight strikes!\"",
		"\"Start with the Tea Gardens - hurry!\"",
	}
	return engine.Screen{
		ID:    ScreenVillage,
		Kind:  engine.KindHub,
		Title: "ZEN VILLAGE",
		Mood:  "green",
		Lines: lines,
		Choices: []engine.Choice{
			{Label: "Go to Tea Gardens", Destination: ScreenTeaGardens},
			{Label: "Visit Tropical Cove", Destination: ScreenTropicalCove},
		},
	}
}

func teaGardensScreen(s engine.State, _ character.Character) engine.Screen {
	choices := []engine.Choice{
		{Label: "Take the matcha powder", Destination: ScreenTeaGardens, Grants: []engine.Item{MatchaPowder}, Stay: true},
		{Label: "Return to the village", Destination: ScreenVillage},
	}
	if s.Inventory.Has(MatchaPowder) {
		choices = append(choices, engine.Choice{Label: "Go to Honey Mountain", Destination: ScreenMountainPeak})
	}
	return engine.Screen{
		ID:    ScreenTeaGardens,
		Kind:  engine.KindStandard,
		Title: "TEA GARDENS",
		Mood:  "green",
		Lines: []string{
			"The Garden Keeper is tending to the last batch of matcha plants before Y2K hits.",
			"\"The party guests are getting restless!\"",
			"\"This matcha powder is our last hope - it's Y2K compliant!\"",
			"\"The computers may crash, but this tea is eternal!\"",
			"\"Take it quickly - time is running out!\"",
		},
		Choices: choices,
	}
}

func tropicalCoveScreen(s engine.State, _ character.Character) engine.Screen {
	choices := []engine.Choice{
		{Label: "Take the coconut milk", Destination: ScreenTropicalCove, Grants: []engine.Item{CoconutMilk}, Stay: true},
		{Label: "Return to the village", Destination: ScreenVillage},
	}
	if s.Inventory.Has(CoconutMilk) {
		choices = append(choices, engine.Choice{Label: "Go to Ice Caves", Destination: ScreenIceCaves})
	}
	return engine.Screen{
		ID:    ScreenTropicalCove,
		Kind:  engine.KindStandard,
		Title: "TROPICAL COVE",
		Mood:  "aqua",
		Lines: []string{
			"Coco the coconut vendor is chilling on the beach, unworried about Y2K.",
			"\"Dude! I heard about the matcha party emergency!\"",
			"\"This coconut milk is totally fresh - no preservatives, no Y2K worries!\"",
			"\"It's gonna make that matcha smooth as a Backstreet Boys harmony!\"",
			"\"Save that party, time traveler!\"",
		},
		Choices: choices,
	}
}

func mountainPeakScreen(s engine.State, _ character.Character) engine.Screen {
	choices := []engine.Choice{
		{Label: "Take the honey", Destination: ScreenMountainPeak, Grants: []engine.Item{Honey}, Stay: true},
		{Label: "Return to Tea Gardens", Destination: ScreenTeaGardens},
	}
	if s.Inventory.Has(Honey) && s.Inventory.Count() >= 3 {
		choices = append(choices, engine.Choice{Label: "Go to Party Temple", Destination: ScreenSacredTemple})
	}
	return engine.Screen{
		ID:    ScreenMountainPeak,
		Kind:  engine.KindStandard,
		Title: "HONEY MOUNTAIN",
		Mood:  "amber",
		Lines: []string{
			"Buzz the beekeeper is frantically trying to calm his bees before Y2K.",
			"\"*frantic buzzing*\"",
			"\"The bees are worried about Y2K too!\"",
			"\"But this honey? It's been the same recipe for millennia!\"",
			"\"No computer can crash nature's sweetness!\"",
			"\"Take it - the party MUST go on!\"",
		},
		Choices: choices,
	}
}

func iceCavesScreen(s engine.State, _ character.Character) engine.Screen {
	choices := []engine.Choice{
		{Label: "Take the ice cubes", Destination: ScreenIceCaves, Grants: []engine.Item{IceCubes}, Stay: true},
		{Label: "Return to Tropical Cove", Destination: ScreenTropicalCove},
	}
	if s.Inventory.Has(IceCubes) && s.Inventory.Count() >= 3 {
		choices = append(choices, engine.Choice{Label: "Go to Party Temple", Destination: ScreenSacredTemple})
	}
	return engine.Screen{
		ID:    ScreenIceCaves,
		Kind:  engine.KindStandard,
		Title: "CRYSTAL ICE CAVES",
		Mood:  "ice",
		Lines: []string{
			"Frost the ice spirit hovers mysteriously in the frozen air.",
			"\"Time traveler... I've been expecting you...\"",
			"\"These ice cubes have been waiting since the last ice age.\"",
			"\"No Y2K bug can touch what's already frozen in time!\"",
			"\"Take them - the final countdown has begun!\"",
		},
		Choices: choices,
	}
}

func sacredTempleScreen(_ engine.State, _ character.Character) engine.Screen {
	return engine.Screen{
		ID:    ScreenSacredTemple,
		Kind:  engine.KindStandard,
		Title: "PARTY TEMPLE - 11:55 PM",
		Mood:  "violet",
		Lines: []string{
			"DJ Harmony is frantically trying to keep the party going as midnight approaches.",
			"\"You made it! The party guests are counting down!\"",
			"\"Quick! Use this ancient whisk to create the legendary drink!\"",
			"\"Mix those ingredients with the power of '90s nostalgia!\"",
			"\"SAVE THE PARTY! SAVE THE FUTURE OF MATCHA!\"",
		},
		Choices: []engine.Choice{
			{Label: "Mix the ingredients", Destination: ScreenEnding, Grants: []engine.Item{MatchaLatte}},
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
		return "🌟 LEGENDARY PARTY SAVIOR 🌟"
	case engine.EndingHeroic:
		return "🎉 HEROIC PARTY RESCUE 🎉"
	case engine.EndingClutch:
		return "⚡ CLUTCH SAVE ⚡"
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
			fmt.Sprintf("%s saved the party with time to spare! The matcha flows like rivers of green gold!", hero.Name),
			"The party becomes the stuff of legends. People will talk about this New Year's Eve for decades. You've not only saved matcha culture - you've elevated it to mythical status!",
		}
	case engine.EndingHeroic:
		return []string{
			fmt.Sprintf("%s pulled through with solid time management! The party is saved and everyone's celebrating!", hero.Name),
			"The crowd erupts in cheers as you deliver the perfect matcha! The DJ cranks up 'Mambo No. 5' and the dance floor explodes. You're the hero of Y2K!",
		}
	case engine.EndingClutch:
		return []string{
			fmt.Sprintf("That was way too close for comfort, but %s did it! Hearts are still racing!", hero.Name),
			"Everyone's sweating bullets as you mix the final ingredient. The countdown reaches 3... 2... 1... and BOOM! Perfect matcha just as the ball drops! Talk about cutting it close!",
		}
	case engine.EndingMiracle:
		return []string{
			fmt.Sprintf("HOLY MOLY! %s literally saved the party in the final seconds! That was INSANE!", hero.Name),
			"The crowd is going ABSOLUTELY WILD! You mixed that matcha with SECONDS to spare! People are crying, screaming, hugging strangers! This is the most dramatic party save in history!",
		}
	default:
		return []string{
			"Time ran out! The party was ruined and matcha culture is lost forever!",
			"The computers crash, the lights go out, and everyone goes home disappointed. Matcha becomes a forgotten relic of the 20th century. History will not remember you kindly...",
		}
	}
}
