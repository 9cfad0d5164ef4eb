package frequency

import (
	"strings"
	"testing"

	"github.com/morningparty/frequency-rescue/internal/character"
	"github.com/morningparty/frequency-rescue/internal/engine"
)

func testHero() character.Character {
	h, _ := character.Get("dude")
	return h
}

func fullInventory() engine.Inventory {
	inv := engine.NewInventory()
	for _, f := range AllFrequencies {
		inv[f] = struct{}{}
	}
	return inv
}

func TestCatalogIsClosed(t *testing.T) {
	st := New()
	hero := testHero()

	// A full inventory exposes every conditional choice (the console
	// only offers the upload once the lattice is complete).
	full := engine.State{Inventory: fullInventory(), Minute: startMinute}

	for id := range st.Kinds {
		scr, ok := st.Screens(id, full, hero)
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

func TestStoryAnchors(t *testing.T) {
	st := New()

	if st.Kinds[st.Intro] != engine.KindStandard {
		t.Errorf("intro %q has kind %v", st.Intro, st.Kinds[st.Intro])
	}
	if st.Kinds[st.Hub] != engine.KindHub {
		t.Errorf("hub %q has kind %v", st.Hub, st.Kinds[st.Hub])
	}
	if st.Kinds[st.Ending] != engine.KindEnding {
		t.Errorf("ending %q has kind %v", st.Ending, st.Kinds[st.Ending])
	}
	if st.StartMinute != 23*60+30 || st.DeadlineMinute != 24*60 {
		t.Errorf("clock bounds = %d..%d", st.StartMinute, st.DeadlineMinute)
	}
}

func TestLatticeSequencing(t *testing.T) {
	rules := rules()

	// Family-6 tones need the anchor.
	for _, f := range FamilySix {
		if v := rules.Check(f, engine.NewInventory()); v.Accepted {
			t.Errorf("%v accepted without the 174 Hz anchor", f)
		}
	}

	withAnchor := engine.Inventory{Freq174: {}}
	for _, f := range FamilySix {
		if v := rules.Check(f, withAnchor); !v.Accepted {
			t.Errorf("%v rejected with the anchor present: %s", f, v.Reason)
		}
	}

	// Family-9 tones need any family-6 tone; the anchor alone is not
	// enough.
	for _, f := range FamilyNine {
		if v := rules.Check(f, withAnchor); v.Accepted {
			t.Errorf("%v accepted with only the anchor", f)
		}
	}
	for _, six := range FamilySix {
		inv := engine.Inventory{Freq174: {}, six: {}}
		for _, f := range FamilyNine {
			if v := rules.Check(f, inv); !v.Accepted {
				t.Errorf("%v rejected with %v present: %s", f, six, v.Reason)
			}
		}
	}

	// The anchor itself and the side pickups are ungated.
	for _, it := range []engine.Item{Freq174, DrinkPrana, DrinkKombucha, ExpIcePlunge, ExpBreathwork} {
		if v := rules.Check(it, engine.NewInventory()); !v.Accepted {
			t.Errorf("%v should have no prerequisite", it)
		}
	}
}

func TestConsoleGatesUpload(t *testing.T) {
	st := New()
	hero := testHero()

	empty := engine.State{Inventory: engine.NewInventory(), Minute: startMinute}
	scr, _ := st.Screens(ScreenConsole, empty, hero)
	for _, c := range scr.Choices {
		if c.Destination == ScreenEnding {
			t.Error("console offered the upload with an incomplete lattice")
		}
	}

	full := engine.State{Inventory: fullInventory(), Minute: startMinute}
	scr, _ = st.Screens(ScreenConsole, full, hero)
	found := false
	for _, c := range scr.Choices {
		if c.Destination == ScreenEnding {
			found = true
		}
	}
	if !found {
		t.Error("console did not offer the upload with the full lattice")
	}
}

func TestMapShowsProgress(t *testing.T) {
	st := New()
	hero := testHero()

	s := engine.State{
		Inventory: engine.Inventory{Freq174: {}},
		Minute:    startMinute,
		Blocked:   needAnchor,
	}
	scr, _ := st.Screens(ScreenMap, s, hero)

	joined := strings.Join(scr.Lines, "\n")
	if !strings.Contains(joined, "1/7") {
		t.Errorf("map does not show restored count: %q", joined)
	}
	if !strings.Contains(joined, "11:30 PM") {
		t.Errorf("map does not show the clock: %q", joined)
	}
	// The advisory has its own box in the session view; the map must
	// not repeat it in its dialogue.
	if strings.Contains(joined, needAnchor) {
		t.Error("map duplicates the blocked advisory in its lines")
	}

	if !strings.Contains(scr.Choices[0].Label, "✓") {
		t.Errorf("restored station not checkmarked: %q", scr.Choices[0].Label)
	}
	if strings.Contains(scr.Choices[1].Label, "✓") {
		t.Errorf("unrestored station checkmarked: %q", scr.Choices[1].Label)
	}
}

func TestFullPlaythrough(t *testing.T) {
	st := New()
	eng := engine.New(st, testHero(), nil)
	s := eng.Start()

	// Intro to map.
	s = eng.Choose(s, engine.Choice{Label: "go", Destination: ScreenMap})

	// Record in lattice order. Every station choice grants on a
	// same-screen destination, so a successful recording bounces back
	// to the map.
	stations := map[engine.Item]engine.ScreenID{
		Freq174: ScreenSoundDome,
		Freq285: ScreenBreathTemple,
		Freq528: ScreenHydrationWell,
		Freq852: ScreenLightGarden,
		Freq396: ScreenPlungeCove,
		Freq639: ScreenEchoChamber,
		Freq963: ScreenStarDeck,
	}
	for _, f := range AllFrequencies {
		dest := stations[f]
		s = eng.Choose(s, engine.Choice{Label: "visit", Destination: dest})
		s = eng.Choose(s, engine.Choice{Label: "record", Destination: dest, Grants: []engine.Item{f}})
		if !s.Inventory.Has(f) {
			t.Fatalf("failed to record %v in lattice order", f)
		}
		if s.Screen != ScreenMap {
			t.Fatalf("recording %v did not bounce to the map, landed on %q", f, s.Screen)
		}
	}

	// Upload.
	s = eng.Choose(s, engine.Choice{Label: "console", Destination: ScreenConsole})
	s = eng.Choose(s, engine.Choice{Label: "upload", Destination: ScreenEnding})

	if !s.Complete {
		t.Fatal("upload did not complete the session")
	}
	if s.Ending != engine.EndingLegendary {
		t.Errorf("instant playthrough ending = %v, want legendary", s.Ending)
	}

	scr := eng.Screen(s)
	if !strings.Contains(scr.Title, "LEGENDARY") {
		t.Errorf("ending title = %q", scr.Title)
	}
}

func TestEndingScreenPerOutcome(t *testing.T) {
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
		if len(scr.Choices) == 0 || scr.Choices[0].Label != "Play Again" {
			t.Errorf("ending %v has no Play Again choice", tt.ending)
		}
	}
}

func TestReviewChecklist(t *testing.T) {
	st := New()
	hero := testHero()

	s := engine.State{
		Inventory: engine.Inventory{Freq174: {}, Freq528: {}, DrinkPrana: {}},
		Minute:    startMinute + 10,
	}
	scr, _ := st.Screens(ScreenReview, s, hero)
	joined := strings.Join(scr.Lines, "\n")

	if !strings.Contains(joined, "✓ 174 Hz") {
		t.Error("review missing checkmark for the restored anchor")
	}
	if !strings.Contains(joined, "✗ 963 Hz") {
		t.Error("review missing cross for an unrestored tone")
	}
	if !strings.Contains(joined, "Side quests") {
		t.Error("review does not count side pickups")
	}
}
