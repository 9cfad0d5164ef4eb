package matcha

import "github.com/morningparty/frequency-rescue/internal/engine"

// The sacred ingredients. None of them has a prerequisite; only the
// finished latte is gated, on having gathered enough of the base four
// to whisk (three or more, matching what the temple accepts).
var (
	MatchaPowder = engine.Item{Category: engine.CategoryIngredient, Key: "matcha_powder"}
	CoconutMilk  = engine.Item{Category: engine.CategoryIngredient, Key: "coconut_milk"}
	Honey        = engine.Item{Category: engine.CategoryIngredient, Key: "honey"}
	IceCubes     = engine.Item{Category: engine.CategoryIngredient, Key: "ice_cubes"}

	MatchaLatte = engine.Item{Category: engine.CategoryElixir, Key: "matcha_latte"}
)

func rules() engine.RuleTable {
	return engine.RuleTable{
		MatchaLatte: {
			Need: func(inv engine.Inventory) bool {
				return inv.CountCategory(engine.CategoryIngredient) >= 3
			},
			Blocked: "The ancient whisk spins uselessly - you need at least three sacred ingredients to mix the legendary drink.",
		},
	}
}

func items() map[engine.Item]engine.ItemInfo {
	return map[engine.Item]engine.ItemInfo{
		MatchaPowder: {Glyph: "🍵", Label: "Matcha"},
		CoconutMilk:  {Glyph: "🥥", Label: "Coconut Milk"},
		Honey:        {Glyph: "🍯", Label: "Honey"},
		IceCubes:     {Glyph: "🧊", Label: "Ice"},
		MatchaLatte:  {Glyph: "✨", Label: "Matcha Latte"},
	}
}
