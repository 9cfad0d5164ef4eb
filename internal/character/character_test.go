package character

import "testing"

func TestGetKnownHeroes(t *testing.T) {
	for _, id := range []string{"dude", "dudette"} {
		c, ok := Get(id)
		if !ok {
			t.Fatalf("hero %q missing from roster", id)
		}
		if c.ID != id {
			t.Errorf("hero %q has ID %q", id, c.ID)
		}
		if c.Name == "" || c.Glyph == "" || c.Catchphrase == "" {
			t.Errorf("hero %q has empty display fields: %+v", id, c)
		}
	}

	if _, ok := Get("nobody"); ok {
		t.Error("Get returned a hero for an unknown ID")
	}
}

func TestAllSortedByID(t *testing.T) {
	all := All()
	if len(all) < 2 {
		t.Fatalf("roster has %d heroes, want at least 2", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("All() not sorted: %q before %q", all[i-1].ID, all[i].ID)
		}
	}
}

func TestReactionPoolsComplete(t *testing.T) {
	for _, c := range All() {
		pools := map[string][]string{
			"QuestComplete":  c.Reactions.QuestComplete,
			"AreaTransition": c.Reactions.AreaTransition,
			"TimeWarning":    c.Reactions.TimeWarning,
			"Victory":        c.Reactions.Victory,
			"Failure":        c.Reactions.Failure,
		}
		for name, pool := range pools {
			if len(pool) == 0 {
				t.Errorf("hero %q has no %s reactions", c.ID, name)
			}
		}
	}
}

func TestReactRotates(t *testing.T) {
	pool := []string{"a", "b", "c"}

	if got := React(pool, 0); got != "a" {
		t.Errorf("React(0) = %q", got)
	}
	if got := React(pool, 2); got != "c" {
		t.Errorf("React(2) = %q", got)
	}
	if got := React(pool, 3); got != "a" {
		t.Errorf("React(3) should wrap, got %q", got)
	}
	if got := React(nil, 5); got != "" {
		t.Errorf("React on empty pool = %q, want empty string", got)
	}
}
