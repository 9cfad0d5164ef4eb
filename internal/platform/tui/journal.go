package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/morningparty/frequency-rescue/internal/registry"
	"github.com/morningparty/frequency-rescue/internal/storage"
)

// Journal layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show story list sidebar
	sidebarWidth       = 22 // Width of story list sidebar
	maxJournalEntries  = 50 // Max sessions to load per story
)

// JournalKeyMap defines the key bindings for the session journal.
type JournalKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextStory key.Binding
	PrevStory key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextStory, k.PrevStory, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextStory, k.PrevStory},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev story"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next story"),
		),
		NextStory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next story"),
		),
		PrevStory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev story"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for the session journal screen.
type JournalModel struct {
	stories     []registry.StoryInfo
	storyCursor int
	store       *storage.Store
	sessions    []storage.SessionRecord
	stats       *storage.StoryStats
	table       table.Model
	help        help.Model
	keys        JournalKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewJournalModel creates a new journal model.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	keys := DefaultJournalKeyMap()
	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		stories:     registry.List(),
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()

	if len(m.stories) > 0 {
		m.loadSessions(m.stories[0].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 13},
		{Title: "Hero", Width: 8},
		{Title: "Ending", Width: 10},
		{Title: "Took", Width: 7},
		{Title: "Gear", Width: 5},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions loads the journal for the given story ID.
func (m *JournalModel) loadSessions(storyID string) {
	if m.store == nil {
		m.sessions = nil
		m.stats = nil
		m.updateTableRows()
		return
	}

	sessions, err := m.store.RecentSessions(storyID, maxJournalEntries)
	if err != nil {
		m.sessions = nil
	} else {
		m.sessions = sessions
	}

	stats, err := m.store.GetStoryStats(storyID)
	if err != nil {
		m.stats = nil
	} else {
		m.stats = stats
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			s.CreatedAt.Format("Jan 02 15:04"),
			s.CharacterID,
			s.Ending,
			fmt.Sprintf("%d min", s.ElapsedMinutes),
			fmt.Sprintf("%d", s.ItemsCollected),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextStory), key.Matches(msg, m.keys.Right):
			if len(m.stories) > 0 {
				m.storyCursor = (m.storyCursor + 1) % len(m.stories)
				m.loadSessions(m.stories[m.storyCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevStory), key.Matches(msg, m.keys.Left):
			if len(m.stories) > 0 {
				m.storyCursor--
				if m.storyCursor < 0 {
					m.storyCursor = len(m.stories) - 1
				}
				m.loadSessions(m.stories[m.storyCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "PARTY JOURNAL"
	if len(m.stories) > 0 {
		title = fmt.Sprintf("PARTY JOURNAL - %s", m.stories[m.storyCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	if m.stats != nil && m.stats.Sessions > 0 {
		line := fmt.Sprintf("%d runs  |  %d saved mornings", m.stats.Sessions, m.stats.Saves)
		if m.stats.BestTime > 0 {
			line += fmt.Sprintf("  |  best rescue: %d min", m.stats.BestTime)
		}
		b.WriteString(helpStyle.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the journal with a story sidebar.
func (m JournalModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Nights\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, st := range m.stories {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.storyCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := st.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := tableStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the journal with story tabs above the table.
func (m JournalModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.stories))
	for i, st := range m.stories {
		shortName := st.Title
		if len(shortName) > 12 {
			shortName = shortName[:11] + "."
		}
		if i == m.storyCursor {
			tabs[i] = activeTabStyle.Render(shortName)
		} else {
			tabs[i] = tabStyle.Render(" " + shortName + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if len(tabLine) > m.width-4 && len(m.stories) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.stories[m.storyCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m JournalModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No nights on record.\nPlay one to fill the journal!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// RunJournal runs the journal screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunJournal(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewJournalModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(JournalModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
