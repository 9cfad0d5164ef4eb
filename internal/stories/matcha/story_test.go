package matcha

import (
	"strings"
	"testing"

	"github.com/morningparty/frequency-rescue/internal/character"
	"github.com/morningparty/frequency-rescue/internal/engine"
)

func testHero() character.Character {
	h, _ := character.Get("dudette")
	return h
}

func TestCatalogIsClosed(t *testing.T) {
	st := New()
	hero := testHero()

	// A full inventory exposes every conditional forward choice.
	full := engine.Inventory{
		MatchaPowder: {}, CoconutMilk: {}, Honey: {}, IceCubes: {},
	}
	state := engine.State{Inventory: full, Minute: startMinute}

	for id := range st.Kinds {
		scr, ok := st.Screens(id, state, hero)
		if !ok {
			t.Errorf("screen %q declared in Kinds but missing from catalog", id)
			continue
		}
		for _, c := range scr.Choices {
			if _, declared := st.Kinds[c.Destination]; !declared {
				t.Errorf("screen %q choice %q points at undeclared screen %q", id, c.Label, c.Destination)
			}
		}
	}
}

func TestLatteNeedsThreeIngredients(t *testing.T) {
	rules := rules()

	two := engine.Inventory{MatchaPowder: {}, CoconutMilk: {}}
	if v := rules.Check(MatchaLatte, two); v.Accepted {
		t.Error("latte whisked with only two ingredients")
	}

	three := engine.Inventory{MatchaPowder: {}, CoconutMilk: {}, Honey: {}}
	if v := rules.Check(MatchaLatte, three); !v.Accepted {
		t.Errorf("latte rejected with three ingredients: %s", v.Reason)
	}

	// Ingredients themselves are ungated.
	for _, it := range []engine.Item{MatchaPowder, CoconutMilk, Honey, IceCubes} {
		if v := rules.Check(it, engine.NewInventory()); !v.Accepted {
			t.Errorf("%v should have no prerequisite", it)
		}
	}
}

func TestForwardPathsUnlockWithInventory(t *testing.T) {
	st := New()
	hero := testHero()

	// Tea Gardens only offers Honey Mountain once the powder is taken.
	empty := engine.State{Inventory: engine.NewInventory()}
	scr, _ := st.Screens(ScreenTeaGardens, empty, hero)
	for _, c := range scr.Choices {
		if c.Destination == ScreenMountainPeak {
			t.Error("mountain path open before taking the matcha powder")
		}
	}

	withPowder := engine.State{Inventory: engine.Inventory{MatchaPowder: {}}}
	scr, _ = st.Screens(ScreenTeaGardens, withPowder, hero)
	found := false
	for _, c := range scr.Choices {
		if c.Destination == ScreenMountainPeak {
			found = true
		}
	}
	if !found {
		t.Error("mountain path closed after taking the matcha powder")
	}

	// The temple path needs honey plus three total ingredients.
	withHoneyOnly := engine.State{Inventory: engine.Inventory{Honey: {}}}
	scr, _ = st.Screens(ScreenMountainPeak, withHoneyOnly, hero)
	for _, c := range scr.Choices {
		if c.Destination == ScreenSacredTemple {
			t.Error("temple path open with a single ingredient")
		}
	}
}

func TestFullPlaythrough(t *testing.T) {
	st := New()
	eng := engine.New(st, testHero(), nil)
	s := eng.Start()

	s = eng.Choose(s, engine.Choice{Label: "go", Destination: ScreenVillage})

	// The collect choices stay put; travel between areas is explicit.
	collect := []struct {
		area engine.ScreenID
		item engine.Item
	}{
		{ScreenTeaGardens, MatchaPowder},
		{ScreenTropicalCove, CoconutMilk},
		{ScreenMountainPeak, Honey},
		{ScreenIceCaves, IceCubes},
	}
	for _, c := range collect {
		s = eng.Choose(s, engine.Choice{Label: "travel", Destination: c.area})
		s = eng.Choose(s, engine.Choice{Label: "take", Destination: c.area, Grants: []engine.Item{c.item}, Stay: true})
		if !s.Inventory.Has(c.item) {
			t.Fatalf("failed to collect %v", c.item)
		}
		if s.Screen != c.area {
			t.Fatalf("stay collection moved to %q", s.Screen)
		}
	}

	// Whisk at the temple. The ending destination is exempt from the
	// hub bounce, so the grant and the transition land together.
	s = eng.Choose(s, engine.Choice{Label: "temple", Destination: ScreenSacredTemple})
	s = eng.Choose(s, engine.Choice{Label: "mix", Destination: ScreenEnding, Grants: []engine.Item{MatchaLatte}})

	if !s.Inventory.Has(MatchaLatte) {
		t.Fatal("latte not whisked at the temple")
	}
	if !s.Complete {
		t.Fatal("mixing did not complete the session")
	}
	if s.Ending != engine.EndingLegendary {
		t.Errorf("instant playthrough ending = %v, want legendary", s.Ending)
	}
}

func TestVillageLeavesAdvisoryToTheView(t *testing.T) {
	st := New()
	hero := testHero()

	// The session view renders the advisory in its own box; the
	// village must not repeat it in its dialogue.
	s := engine.State{
		Inventory: engine.NewInventory(),
		Blocked:   "The ancient whisk spins uselessly - you need at least three sacred ingredients to mix the legendary drink.",
	}
	scr, _ := st.Screens(ScreenVillage, s, hero)
	joined := strings.Join(scr.Lines, "\n")
	if strings.Contains(joined, "ancient whisk") {
		t.Error("village duplicates the blocked advisory in its lines")
	}
}

func TestEndingTitles(t *testing.T) {
	st := New()
	hero := testHero()

	tests := []struct {
		ending engine.Ending
		want   string
	}{
		{engine.EndingLegendary, "LEGENDARY"},
		{engine.EndingHeroic, "HEROIC"},
		{engine.EndingClutch, "CLUTCH"},
		{engine.EndingMiracle, "MIRACLE"},
		{engine.EndingFailure, "MELTDOWN"},
	}
	for _, tt := range tests {
		s := engine.State{Ending: tt.ending, Complete: true, Inventory: engine.NewInventory()}
		scr, _ := st.Screens(ScreenEnding, s, hero)
		if !strings.Contains(scr.Title, tt.want) {
			t.Errorf("ending %v title = %q, want it to mention %q", tt.ending, scr.Title, tt.want)
		}
	}
}
