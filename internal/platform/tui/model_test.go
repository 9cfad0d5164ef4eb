package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morningparty/frequency-rescue/internal/character"
	"github.com/morningparty/frequency-rescue/internal/config"
	"github.com/morningparty/frequency-rescue/internal/engine"
)

func smallStory() *engine.Story {
	screens := map[engine.ScreenID]engine.Screen{
		"intro": {
			ID:    "intro",
			Title: "INTRO",
			Lines: []string{"only line"},
			Choices: []engine.Choice{
				{Label: "Finish", Destination: "end"},
			},
		},
		"end": {
			ID:      "end",
			Kind:    engine.KindEnding,
			Title:   "END",
			Lines:   []string{"done"},
			Choices: []engine.Choice{{Label: "Play Again", Destination: "intro"}},
		},
	}
	return &engine.Story{
		ID:             "small",
		Title:          "Small",
		Intro:          "intro",
		Hub:            "intro",
		Ending:         "end",
		Kinds:          map[engine.ScreenID]engine.ScreenKind{"intro": engine.KindStandard, "end": engine.KindEnding},
		StartMinute:    23*60 + 30,
		DeadlineMinute: 24 * 60,
		Screens: func(id engine.ScreenID, _ engine.State, _ character.Character) (engine.Screen, bool) {
			scr, ok := screens[id]
			return scr, ok
		},
	}
}

func smallModel() Model {
	hero, _ := character.Get("dude")
	return NewModel(smallStory(), hero, nil, config.DefaultConfig())
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelTitleGate(t *testing.T) {
	m := smallModel()

	// Ticks and game keys do nothing on the title screen.
	m, cmd := step(t, m, TickMsg{})
	if cmd != nil {
		t.Error("tick before start rescheduled itself")
	}
	if m.state.Minute != m.engine.Story().StartMinute {
		t.Error("clock moved before the mission started")
	}

	// Enter starts the session and the tick chain.
	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.started {
		t.Fatal("enter did not start the session")
	}
	if cmd == nil {
		t.Error("starting did not schedule the first tick")
	}
}

func TestModelDialogueThenChoice(t *testing.T) {
	m := smallModel()
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // title

	// The single intro line is showing; one more confirm reveals the
	// choices, the next takes the selected one.
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.state.ChoicesVisible {
		t.Fatal("confirm past the last line did not reveal choices")
	}
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.state.Complete {
		t.Fatal("taking the terminal choice did not complete the session")
	}
	if m.state.Ending != engine.EndingLegendary {
		t.Errorf("ending = %v, want legendary", m.state.Ending)
	}
}

func TestModelTickChainStopsOnComplete(t *testing.T) {
	m := smallModel()
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // complete

	minute := m.state.Minute
	m, cmd := step(t, m, TickMsg{})
	if cmd != nil {
		t.Error("tick on a complete session rescheduled itself")
	}
	if m.state.Minute != minute {
		t.Error("tick on a complete session moved the clock")
	}
}

func TestModelMidSessionTickReschedules(t *testing.T) {
	m := smallModel()
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := step(t, m, TickMsg{})
	if cmd == nil {
		t.Error("mid-session tick did not reschedule")
	}
	if got := m.state.Minute; got != m.engine.Story().StartMinute+1 {
		t.Errorf("minute after one tick = %d", got)
	}
}

func TestModelRestartAfterEnding(t *testing.T) {
	m := smallModel()
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // complete

	m, cmd := step(t, m, runeKey('r'))
	if m.state.Complete {
		t.Fatal("restart did not reset the session")
	}
	if m.state.Screen != "intro" || m.state.Minute != m.engine.Story().StartMinute {
		t.Errorf("restart state = %+v", m.state)
	}
	if cmd == nil {
		t.Error("restart did not restart the tick chain")
	}
}

func TestModelRestartOrphansPendingTick(t *testing.T) {
	m := smallModel()
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // complete

	// A tick scheduled before completion is still in flight when the
	// player restarts; it must not drive the fresh session.
	stale := TickMsg{Gen: m.gen}
	m, _ = step(t, m, runeKey('r'))

	m, cmd := step(t, m, stale)
	if cmd != nil {
		t.Error("stale tick rescheduled itself after restart")
	}
	if m.state.Minute != m.engine.Story().StartMinute {
		t.Errorf("stale tick moved the restarted clock to %d", m.state.Minute)
	}

	// The restart's own chain still runs.
	m, cmd = step(t, m, TickMsg{Gen: m.gen})
	if cmd == nil {
		t.Error("current-generation tick did not reschedule")
	}
	if got := m.state.Minute; got != m.engine.Story().StartMinute+1 {
		t.Errorf("minute after one fresh tick = %d", got)
	}
}

func TestViewRendersAdvisoryOnce(t *testing.T) {
	m := smallModel()
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.state.Blocked = "the door is sealed"

	if got := strings.Count(m.View(), m.state.Blocked); got != 1 {
		t.Errorf("advisory rendered %d times, want 1", got)
	}
}

func TestEventBufferCollectsAndResets(t *testing.T) {
	buf := &eventBuffer{}
	item := engine.Item{Category: engine.CategoryFrequency, Key: "174"}

	buf.ItemCollected(item)
	buf.ItemBlocked(item, "not yet")
	buf.GameEnded(engine.EndingHeroic)

	if len(buf.collected) != 1 || len(buf.blocked) != 1 || buf.ended == nil {
		t.Errorf("buffer did not record events: %+v", buf)
	}

	buf.reset()
	if len(buf.collected) != 0 || len(buf.blocked) != 0 || buf.ended != nil {
		t.Errorf("reset left state behind: %+v", buf)
	}
}
