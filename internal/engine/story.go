package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/morningparty/frequency-rescue/internal/character"
)

// ItemInfo describes how an item is presented to the player.
type ItemInfo struct {
	Glyph string
	Label string
}

// Catalog resolves a screen definition for the given state. It is a
// pure read: interpolated lines and conditional choices are computed
// from the state, never written back to it. The second return value
// is false for IDs outside the story's closed set.
type Catalog func(id ScreenID, state State, hero character.Character) (Screen, bool)

// Story is a complete narrative module: the screen catalog, the item
// sequencing rules, and the clock bounds. Stories are immutable after
// construction.
type Story struct {
	ID    string
	Title string
	Tag   string // one-line pitch for menus

	Intro  ScreenID
	Hub    ScreenID
	Ending ScreenID // terminal screen, forced on time expiry

	// Kinds declares the closed set of screen IDs and their kinds.
	// Every ID the catalog can produce or a choice can reference must
	// appear here.
	Kinds map[ScreenID]ScreenKind

	// StartMinute and DeadlineMinute bound the in-world clock, in
	// minutes since 00:00. The default session runs 23:30 to 24:00.
	StartMinute    int
	DeadlineMinute int

	Rules   RuleTable
	Items   map[Item]ItemInfo
	Screens Catalog
}

// Kind returns the declared kind of a screen, KindStandard for
// unknown IDs.
func (st *Story) Kind(id ScreenID) ScreenKind {
	return st.Kinds[id]
}

// Screen resolves the definition for id, falling back to the intro
// screen when the ID is unknown. An unknown ID is a content bug, not
// a player-facing error, so the session keeps going.
func (st *Story) Screen(id ScreenID, state State, hero character.Character) Screen {
	if scr, ok := st.Screens(id, state, hero); ok {
		return scr
	}
	log.Warn("unknown screen, falling back to intro", "story", st.ID, "screen", id)
	scr, ok := st.Screens(st.Intro, state, hero)
	if !ok {
		// A story without its own intro is unusable.
		panic(fmt.Sprintf("story %q: intro screen %q missing from catalog", st.ID, st.Intro))
	}
	return scr
}

// ItemGlyph returns the display glyph for an item, falling back to
// its wire form.
func (st *Story) ItemGlyph(item Item) string {
	if info, ok := st.Items[item]; ok && info.Glyph != "" {
		return info.Glyph
	}
	return item.String()
}

// ItemLabel returns the display label for an item, falling back to
// its wire form.
func (st *Story) ItemLabel(item Item) string {
	if info, ok := st.Items[item]; ok && info.Label != "" {
		return info.Label
	}
	return item.String()
}
