package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morningparty/frequency-rescue/internal/engine"
)

// Solfeggio star chart. The 174 Hz anchor sits at the center, the
// family-6 tones form the upward triangle and the family-9 tones the
// downward one. Family 9 renders as locked until family 6 is
// complete, matching the party's frequency visualizer.
var (
	latticeAnchor = engine.Item{Category: engine.CategoryFrequency, Key: "174"}
	latticeSix    = []engine.Item{
		{Category: engine.CategoryFrequency, Key: "285"},
		{Category: engine.CategoryFrequency, Key: "528"},
		{Category: engine.CategoryFrequency, Key: "852"},
	}
	latticeNine = []engine.Item{
		{Category: engine.CategoryFrequency, Key: "396"},
		{Category: engine.CategoryFrequency, Key: "639"},
		{Category: engine.CategoryFrequency, Key: "963"},
	}
)

var (
	latticeOnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	latticeStarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true)
	latticeOffStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	latticeLockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)

// storyHasLattice reports whether a story collects frequencies at all.
func storyHasLattice(st *engine.Story) bool {
	for item := range st.Items {
		if item.Category == engine.CategoryFrequency {
			return true
		}
	}
	return false
}

// renderLattice draws the star chart for the given inventory.
func renderLattice(inv engine.Inventory) string {
	sixComplete := inv.HasAll(latticeSix...)
	starComplete := sixComplete && inv.HasAll(latticeNine...)

	node := func(item engine.Item, locked bool) string {
		label := item.Key
		switch {
		case starComplete && inv.Has(item):
			return latticeStarStyle.Render("✦" + label)
		case inv.Has(item):
			return latticeOnStyle.Render("●" + label)
		case locked:
			return latticeLockedStyle.Render("·" + label)
		default:
			return latticeOffStyle.Render("○" + label)
		}
	}

	nineLocked := !sixComplete
	lines := []string{
		fmt.Sprintf("      %s", node(latticeNine[2], nineLocked)),
		fmt.Sprintf(" %s       %s", node(latticeNine[0], nineLocked), node(latticeNine[1], nineLocked)),
		fmt.Sprintf("      %s", node(latticeAnchor, false)),
		fmt.Sprintf(" %s       %s", node(latticeSix[0], false), node(latticeSix[2], false)),
		fmt.Sprintf("      %s", node(latticeSix[1], false)),
	}
	return strings.Join(lines, "\n")
}
