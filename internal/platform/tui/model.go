package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morningparty/frequency-rescue/internal/character"
	"github.com/morningparty/frequency-rescue/internal/config"
	"github.com/morningparty/frequency-rescue/internal/engine"
	"github.com/morningparty/frequency-rescue/internal/storage"
)

// eventBuffer collects engine notifications raised during a single
// transition so the model can turn them into flashes after the call
// returns. The engine owns when to call it; the model owns draining.
type eventBuffer struct {
	collected []engine.Item
	blocked   []string
	ended     *engine.Ending
}

func (b *eventBuffer) ItemCollected(item engine.Item) { b.collected = append(b.collected, item) }

func (b *eventBuffer) ItemBlocked(_ engine.Item, reason string) { b.blocked = append(b.blocked, reason) }

func (b *eventBuffer) ScreenEntered(engine.ScreenID) {}

func (b *eventBuffer) GameEnded(e engine.Ending) { b.ended = &e }

func (b *eventBuffer) reset() {
	b.collected = b.collected[:0]
	b.blocked = b.blocked[:0]
	b.ended = nil
}

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	engine *engine.Engine
	state  engine.State
	events *eventBuffer
	store  *storage.Store
	cfg    config.Config
	keys   *KeyMapper

	width  int
	height int

	started  bool // title screen gate
	gen      int  // current tick-chain generation, bumped on restart
	saved    bool // session journaled once per completion
	warned   bool // time warning fired once per session
	cursor   int
	reactN   int // rotation counter for the hero's reaction lines
	flash    string
	quitting bool
	goneBack bool // set when the player backs out to a parent menu
}

// NewModel creates a session model for the given story and hero.
func NewModel(story *engine.Story, hero character.Character, store *storage.Store, cfg config.Config) Model {
	events := &eventBuffer{}
	eng := engine.New(story, hero, events)
	return Model{
		engine: eng,
		state:  eng.Start(),
		events: events,
		store:  store,
		cfg:    cfg,
		keys:   NewKeyMapper(),
		width:  80,
		height: 24,
	}
}

// Init waits on the title screen; the clock starts with the mission.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) tickInterval() time.Duration {
	return time.Duration(m.cfg.Pacing.SecondsPerMinute) * time.Second
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.started {
		if action == ActionConfirm {
			m.started = true
			return m, tickCmd(m.tickInterval(), m.gen)
		}
		if action == ActionBack {
			m.goneBack = true
			return m, tea.Quit
		}
		return m, nil
	}

	scr := m.engine.Screen(m.state)

	switch action {
	case ActionBack:
		m.goneBack = true
		return m, tea.Quit

	case ActionRestart:
		if m.state.Complete {
			return m.restart()
		}

	case ActionUp:
		if m.state.ChoicesVisible && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case ActionDown:
		if m.state.ChoicesVisible && m.cursor < len(scr.Choices)-1 {
			m.cursor++
		}
		return m, nil

	case ActionConfirm:
		if !m.state.ChoicesVisible {
			m.state = m.engine.Advance(m.state)
			return m, nil
		}
		return m.takeChoice(scr, m.cursor)
	}

	if idx := m.keys.ChoiceIndex(msg); idx >= 0 && m.state.ChoicesVisible && idx < len(scr.Choices) {
		return m.takeChoice(scr, idx)
	}

	return m, nil
}

// takeChoice commits the selected choice through the engine. On a
// completed session the only transition left is starting over.
func (m Model) takeChoice(scr engine.Screen, idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(scr.Choices) {
		return m, nil
	}
	if m.state.Complete {
		return m.restart()
	}

	m.events.reset()
	m.state = m.engine.Choose(m.state, scr.Choices[idx])
	m.cursor = 0
	m.drainEvents()

	if m.state.Complete {
		m.saveSession()
	}
	return m, nil
}

// restart begins a fresh session with the same story and hero,
// re-establishing the tick chain. The generation bump orphans any
// tick still pending from the session that just ended.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.state = m.engine.Start()
	m.saved = false
	m.warned = false
	m.cursor = 0
	m.flash = ""
	m.gen++
	m.events.reset()
	return m, tickCmd(m.tickInterval(), m.gen)
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		// Stale tick from before a restart; its chain is dead.
		return m, nil
	}
	if !m.started || m.state.Complete {
		// The clock is stopped; do not reschedule.
		return m, nil
	}

	m.events.reset()
	m.state = m.engine.Tick(m.state)
	m.drainEvents()

	if m.state.Complete {
		m.saveSession()
		return m, nil
	}

	if !m.warned && m.cfg.UI.WarnUnderMinutes > 0 &&
		m.engine.Remaining(m.state) <= m.cfg.UI.WarnUnderMinutes {
		m.warned = true
		m.flash = character.React(m.engine.Hero().Reactions.TimeWarning, m.reactN)
		m.reactN++
	}

	return m, tickCmd(m.tickInterval(), m.gen)
}

// drainEvents converts buffered engine notifications into a flash
// line: the hero reacts to collections, endings override everything.
func (m *Model) drainEvents() {
	hero := m.engine.Hero()
	if len(m.events.collected) > 0 {
		m.flash = character.React(hero.Reactions.QuestComplete, m.reactN)
		m.reactN++
	}
	if m.events.ended != nil {
		pool := hero.Reactions.Victory
		if *m.events.ended == engine.EndingFailure {
			pool = hero.Reactions.Failure
		}
		m.flash = character.React(pool, m.reactN)
		m.reactN++
	}
}

// saveSession journals the completed session once. Best effort: the
// game is already over, a write failure must not disturb the ending.
func (m *Model) saveSession() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true
	//nolint:errcheck // Best-effort save, the ending screen shows regardless
	m.store.SaveSession(storage.SessionRecord{
		StoryID:        m.engine.Story().ID,
		CharacterID:    m.engine.Hero().ID,
		Ending:         m.state.Ending.String(),
		ElapsedMinutes: m.engine.Elapsed(m.state),
		ItemsCollected: m.state.Inventory.Count(),
	})
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting || m.goneBack {
		return ""
	}
	if !m.started {
		return m.viewTitle()
	}
	return m.viewGame()
}

func (m Model) frameWidth() int {
	w := m.width - 4
	if w > 76 {
		w = 76
	}
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) viewTitle() string {
	st := m.engine.Story()
	hero := m.engine.Hero()

	var b strings.Builder
	b.WriteString(titleStyle.Foreground(moodColor("neon")).Render(strings.ToUpper(st.Title)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(st.Tag))
	b.WriteString("\n\n")

	card := []string{
		fmt.Sprintf("%s %s", hero.Glyph, hero.Name),
		fmt.Sprintf("\"%s\"", hero.Catchphrase),
		"",
		hero.Description,
	}
	for _, t := range hero.Personality {
		card = append(card, "  • "+t)
	}
	b.WriteString(screenFrame("midnight", m.frameWidth()).Render(strings.Join(card, "\n")))
	b.WriteString("\n\n")
	b.WriteString(selectedChoiceStyle.Render("> PRESS ENTER TO START"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc back · q quit"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("© 1999 MORNING PARTY SYSTEMS INC. | 640K RAM REQUIRED"))
	return b.String()
}

func (m Model) viewGame() string {
	scr := m.engine.Screen(m.state)

	var b strings.Builder
	b.WriteString(m.viewStatusBar())
	b.WriteString("\n")

	if m.cfg.UI.ShowLattice && storyHasLattice(m.engine.Story()) {
		b.WriteString(renderLattice(m.state.Inventory))
		b.WriteString("\n")
	}

	var body strings.Builder
	body.WriteString(titleStyle.Foreground(moodColor(scr.Mood)).Render(scr.Title))
	body.WriteString("\n\n")

	if m.state.Complete {
		// Terminal screen: full text at once, choices below.
		for _, line := range scr.Lines {
			body.WriteString(dialogueStyle.Render(line))
			body.WriteString("\n")
		}
	} else if len(scr.Lines) > 0 && m.state.DialogueIndex < len(scr.Lines) {
		body.WriteString(dialogueStyle.Render(scr.Lines[m.state.DialogueIndex] + " ▮"))
		body.WriteString("\n")
	}

	if m.state.Blocked != "" {
		body.WriteString("\n")
		body.WriteString(advisoryStyle.Render(m.state.Blocked))
		body.WriteString("\n")
	}

	body.WriteString("\n")
	if m.state.ChoicesVisible {
		for i, c := range scr.Choices {
			style := choiceStyle
			prefix := "  "
			if i == m.cursor {
				style = selectedChoiceStyle
				prefix = "> "
			}
			body.WriteString(style.Render(fmt.Sprintf("%s%d. %s", prefix, i+1, c.Label)))
			body.WriteString("\n")
		}
	} else {
		body.WriteString(choiceStyle.Render("> Continue"))
		body.WriteString("\n")
	}

	b.WriteString(screenFrame(scr.Mood, m.frameWidth()).Render(body.String()))
	b.WriteString("\n")

	if m.flash != "" {
		b.WriteString(flashStyle.Render(fmt.Sprintf("%s %s", m.engine.Hero().Glyph, m.flash)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter continue/choose · ↑/↓ select · 1-9 quick pick · esc back · q quit"))
	return b.String()
}

func (m Model) viewStatusBar() string {
	clock := engine.FormatClock(m.state.Minute)
	if m.cfg.UI.WarnUnderMinutes > 0 && !m.state.Complete &&
		m.engine.Remaining(m.state) <= m.cfg.UI.WarnUnderMinutes {
		clock = urgentStyle.Render(clock)
	}

	glyphs := make([]string, 0, m.state.Inventory.Count())
	for _, item := range m.state.Inventory.Items() {
		glyphs = append(glyphs, m.engine.Story().ItemGlyph(item))
	}
	gear := "None"
	if len(glyphs) > 0 {
		gear = strings.Join(glyphs, " | ")
	}

	return statusStyle.Width(m.frameWidth()).Render(
		fmt.Sprintf("TIME: %s   GEAR: %s", clock, gear),
	)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// GoneBack returns true if user backed out to a parent menu.
func (m Model) GoneBack() bool {
	return m.goneBack
}

// Run starts a standalone Bubble Tea program for one session.
func Run(story *engine.Story, hero character.Character, store *storage.Store, cfg config.Config) error {
	model := NewModel(story, hero, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
