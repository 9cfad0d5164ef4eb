package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/morningparty/frequency-rescue/internal/character"
	"github.com/morningparty/frequency-rescue/internal/registry"
)

// menuPhase tracks which picker the menu is showing.
type menuPhase int

const (
	phaseStory menuPhase = iota
	phaseHero
)

// MenuModel is the Bubble Tea model for the story and hero pickers.
// The two pickers run back to back in one program: choose a night,
// then choose who lives it.
type MenuModel struct {
	stories []registry.StoryInfo
	heroes  []character.Character

	phase       menuPhase
	storyCursor int
	heroCursor  int
	width       int
	height      int
	keys        *KeyMapper

	quitting    bool
	storyID     string
	characterID string
	openJournal bool
}

// NewMenuModel creates a menu over every registered story.
func NewMenuModel() MenuModel {
	return MenuModel{
		stories: registry.List(),
		heroes:  character.All(),
		width:   80,
		height:  24,
		keys:    NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case ActionUp:
		if m.phase == phaseStory && m.storyCursor > 0 {
			m.storyCursor--
		}
		if m.phase == phaseHero && m.heroCursor > 0 {
			m.heroCursor--
		}

	case ActionDown:
		if m.phase == phaseStory && m.storyCursor < len(m.stories)-1 {
			m.storyCursor++
		}
		if m.phase == phaseHero && m.heroCursor < len(m.heroes)-1 {
			m.heroCursor++
		}

	case ActionConfirm:
		if m.phase == phaseStory {
			if len(m.stories) > 0 {
				m.storyID = m.stories[m.storyCursor].ID
				m.phase = phaseHero
			}
			return m, nil
		}
		if len(m.heroes) > 0 {
			m.characterID = m.heroes[m.heroCursor].ID
			return m, tea.Quit
		}

	case ActionBack:
		if m.phase == phaseHero {
			m.phase = phaseStory
			m.storyID = ""
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case ActionJournal:
		m.openJournal = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("T H E   M O R N I N G   P A R T Y", m.width))
	b.WriteString("\n\n")

	if m.phase == phaseStory {
		b.WriteString(centerText("Select a night", m.width))
		b.WriteString("\n\n")
		for i, st := range m.stories {
			cursor := "  "
			if i == m.storyCursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%s%s — %s", cursor, st.Title, st.Tag), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Choose your hero", m.width))
		b.WriteString("\n\n")
		for i, h := range m.heroes {
			cursor := "  "
			if i == m.heroCursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%s%s %s", cursor, h.Glyph, h.Name), m.width))
			b.WriteString("\n")
		}
		if len(m.heroes) > 0 {
			b.WriteString("\n")
			b.WriteString(centerText(m.heroes[m.heroCursor].Description, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Journal  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width. Display width, not
// byte length: hero rows carry wide emoji glyphs.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsJournal returns true if user requested the session journal.
func (m MenuModel) WantsJournal() bool {
	return m.openJournal
}

// Selection returns the chosen story and hero IDs once both pickers
// are done.
func (m MenuModel) Selection() (storyID, characterID string, ok bool) {
	if m.storyID == "" || m.characterID == "" {
		return "", "", false
	}
	return m.storyID, m.characterID, true
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	StoryID      string
	CharacterID  string
	WantsJournal bool
	Quit         bool
}

// RunMenu runs the picker program and returns the selection result.
func RunMenu() (MenuResult, error) {
	model := NewMenuModel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	if m.openJournal {
		return MenuResult{WantsJournal: true}, nil
	}
	if m.quitting || m.storyID == "" || m.characterID == "" {
		return MenuResult{Quit: true}, nil
	}

	return MenuResult{StoryID: m.storyID, CharacterID: m.characterID}, nil
}
