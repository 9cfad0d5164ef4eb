package tui

import tea "github.com/charmbracelet/bubbletea"

// Action represents a semantic UI action, abstracted from physical
// key presses. This centralizes key bindings and makes them testable.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionConfirm // advance dialogue / take selected choice
	ActionBack
	ActionRestart
	ActionJournal
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to UI actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. Returns the action
// and whether it is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit, true
	case "up", "k":
		return ActionUp, false
	case "down", "j":
		return ActionDown, false
	case "enter", " ":
		return ActionConfirm, false
	case "esc", "b":
		return ActionBack, false
	case "r":
		return ActionRestart, false
	case "tab":
		return ActionJournal, false
	}
	return ActionNone, false
}

// ChoiceIndex maps number keys 1-9 to a zero-based choice index.
// Returns -1 for any other key.
func (km *KeyMapper) ChoiceIndex(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}
