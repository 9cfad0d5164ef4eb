package tui

import (
	"strings"
	"testing"

	"github.com/morningparty/frequency-rescue/internal/engine"
)

func TestStoryHasLattice(t *testing.T) {
	withFreq := &engine.Story{
		Items: map[engine.Item]engine.ItemInfo{
			{Category: engine.CategoryFrequency, Key: "174"}: {Glyph: "♪174"},
		},
	}
	if !storyHasLattice(withFreq) {
		t.Error("story with a frequency item should have a lattice")
	}

	withoutFreq := &engine.Story{
		Items: map[engine.Item]engine.ItemInfo{
			{Category: engine.CategoryIngredient, Key: "honey"}: {Glyph: "🍯"},
		},
	}
	if storyHasLattice(withoutFreq) {
		t.Error("ingredient-only story should not have a lattice")
	}
}

func TestRenderLatticeNodeStates(t *testing.T) {
	// Empty: anchor open, family 9 locked.
	out := renderLattice(engine.NewInventory())
	if !strings.Contains(out, "○174") {
		t.Errorf("empty lattice missing open anchor: %q", out)
	}
	if !strings.Contains(out, "·963") {
		t.Errorf("family 9 should render locked before family 6 is complete: %q", out)
	}

	// Anchor collected.
	inv := engine.Inventory{latticeAnchor: {}}
	out = renderLattice(inv)
	if !strings.Contains(out, "●174") {
		t.Errorf("collected anchor not lit: %q", out)
	}

	// Family 6 complete unlocks family 9.
	for _, it := range latticeSix {
		inv[it] = struct{}{}
	}
	out = renderLattice(inv)
	if strings.Contains(out, "·963") {
		t.Errorf("family 9 still locked after family 6 completed: %q", out)
	}
	if !strings.Contains(out, "○963") {
		t.Errorf("unlocked family 9 node should render open: %q", out)
	}
}

func TestRenderLatticeFullStar(t *testing.T) {
	inv := engine.Inventory{latticeAnchor: {}}
	for _, it := range latticeSix {
		inv[it] = struct{}{}
	}
	for _, it := range latticeNine {
		inv[it] = struct{}{}
	}

	out := renderLattice(inv)
	if n := strings.Count(out, "✦"); n != 7 {
		t.Errorf("full lattice rendered %d stars, want 7", n)
	}
}
