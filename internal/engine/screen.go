package engine

// ScreenID identifies one node of a story's narrative graph. The set
// of valid IDs is closed per story and declared in Story.Kinds.
type ScreenID string

// ScreenKind classifies a screen for transition rules. Collecting an
// item normally bounces the player back to the hub, but hub, console,
// review and ending screens are exempt destinations.
type ScreenKind uint8

const (
	KindStandard ScreenKind = iota
	KindHub
	KindConsole
	KindReview
	KindEnding
)

// Choice is a player-selectable transition out of a screen.
type Choice struct {
	Label       string
	Destination ScreenID

	// Grants lists items collected when the choice is taken. Items
	// are submitted to the story's rule table in declared order, so
	// earlier grants can unlock later ones within the same choice.
	Grants []Item

	// Stay suppresses the automatic return to the hub after a
	// successful collection, landing on Destination instead.
	Stay bool
}

// Screen is a rendered view of one narrative node. Definitions are
// templates; lines and choices may be computed from the game state at
// read time (remaining clock, collected counts, checkmarks), but
// reading never mutates state.
type Screen struct {
	ID      ScreenID
	Kind    ScreenKind
	Title   string
	Mood    string
	Lines   []string
	Choices []Choice
}
