// Package character provides the roster of playable heroes. The
// roster is static data chosen once before a game starts; the engine
// reads it and never mutates it.
package character

import "sort"

// Reactions are flavor lines a hero delivers on game events. The
// platform rotates through them deterministically.
type Reactions struct {
	QuestComplete  []string
	AreaTransition []string
	TimeWarning    []string
	Victory        []string
	Failure        []string
}

// Character is an immutable playable hero.
type Character struct {
	ID          string
	Name        string
	Glyph       string
	Description string
	Catchphrase string
	Personality []string
	Reactions   Reactions
}

var roster = map[string]Character{
	"dude": {
		ID:          "dude",
		Name:        "JAKE 'SANDSTORM' RODRIGUEZ",
		Glyph:       "🏄",
		Description: "Radical dude from Dubai who lives for the thrill of the dunes!",
		Catchphrase: "Let's shred this desert, bro!",
		Personality: []string{
			"Totally radical attitude",
			"Says 'dude' and 'bro' a lot",
			"Loves extreme sports",
			"Never backs down from a challenge",
		},
		Reactions: Reactions{
			QuestComplete: []string{
				"Dude, that was SICK! 🤘",
				"Bro, we're totally crushing this mission!",
				"RADICAL! One step closer to saving the party!",
				"That's how we roll in the desert, baby!",
			},
			AreaTransition: []string{
				"Time to hit the road, bro!",
				"Let's see what this place has to offer!",
				"Desert vibes are calling, dude!",
				"Adventure awaits! Let's GOOO!",
			},
			TimeWarning: []string{
				"Whoa dude, time's running out!",
				"Gotta pick up the pace, bro!",
				"The clock's ticking - let's move!",
				"No time to chill, we got a party to save!",
			},
			Victory: []string{
				"YESSS! We totally nailed it, bro!",
				"That's what I'm talking about, dude!",
				"Desert legend status: ACHIEVED!",
				"We just saved the most radical party ever!",
			},
			Failure: []string{
				"Aw man, we totally wiped out...",
				"Bummer dude, the party's toast...",
				"That's a major wipeout, bro...",
				"The desert claimed another victim...",
			},
		},
	},
	"dudette": {
		ID:          "dudette",
		Name:        "ZARA 'LIGHTNING' AL-RASHID",
		Glyph:       "⚡",
		Description: "Fierce desert queen who rules the dunes with style and speed!",
		Catchphrase: "Time to show these dunes who's boss!",
		Personality: []string{
			"Confident and fearless",
			"Quick-witted and determined",
			"Desert racing champion",
			"Never gives up, ever",
		},
		Reactions: Reactions{
			QuestComplete: []string{
				"YES! That's how it's done! 💪",
				"Another victory for the desert queen!",
				"Flawless execution, as always!",
				"They don't call me Lightning for nothing!",
			},
			AreaTransition: []string{
				"Next stop: victory!",
				"Let's make this quick and stylish!",
				"The dunes bow to their queen!",
				"Watch and learn how it's done!",
			},
			TimeWarning: []string{
				"The clock won't beat me!",
				"Pressure? I thrive on pressure!",
				"Midnight can wait - I can't!",
				"Time to turn up the speed!",
			},
			Victory: []string{
				"Of course we won. Was there ever a doubt?",
				"Lightning strikes again!",
				"The party is SAVED, in record style!",
				"Legendary? I prefer inevitable!",
			},
			Failure: []string{
				"No... I never lose. This can't be happening...",
				"Even queens fall sometimes...",
				"The midnight bell tolls for us all...",
				"This defeat will not be forgotten...",
			},
		},
	},
}

// Get returns the hero with the given ID.
func Get(id string) (Character, bool) {
	c, ok := roster[id]
	return c, ok
}

// All returns the full roster sorted by ID.
func All() []Character {
	out := make([]Character, 0, len(roster))
	for _, c := range roster {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// React picks a reaction line deterministically from the given pool
// using a rotation counter, so repeated events cycle the lines
// instead of repeating the first one.
func React(pool []string, n int) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[n%len(pool)]
}
