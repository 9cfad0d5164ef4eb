// Package engine implements the narrative mini-game state machine:
// screens, choices, inventory sequencing, the countdown clock and the
// ending classification. It contains no terminal or storage
// dependencies so game logic stays pure and testable; the platform
// layer owns input mapping, the tick schedule and rendering.
package engine

import (
	"fmt"

	"github.com/morningparty/frequency-rescue/internal/character"
)

// State is one immutable snapshot of a running session. Transitions
// compute a new State from the previous one and replace it wholesale,
// so no observer ever sees a half-applied update.
type State struct {
	Screen         ScreenID
	DialogueIndex  int
	ChoicesVisible bool
	Inventory      Inventory

	// Minute is the in-world clock in minutes since 00:00. It counts
	// upward from the story's start minute and clamps at the
	// deadline.
	Minute int

	Complete bool
	Ending   Ending

	// Blocked is a transient advisory from the last rejected item
	// grant, cleared by the next successful transition.
	Blocked string
}

// Engine drives one game session for one hero. The engine itself
// holds no mutable session state; callers thread State values through
// its transition methods.
type Engine struct {
	story  *Story
	hero   character.Character
	events Events
}

// New creates an engine for the given story and hero. A nil events
// sink is replaced with a no-op.
func New(story *Story, hero character.Character, events Events) *Engine {
	if events == nil {
		events = NopEvents{}
	}
	return &Engine{story: story, hero: hero, events: events}
}

// Story returns the narrative module this engine runs.
func (e *Engine) Story() *Story { return e.story }

// Hero returns the character playing this session.
func (e *Engine) Hero() character.Character { return e.hero }

// Start returns the initial state: intro screen, empty inventory,
// clock at the story's start minute.
func (e *Engine) Start() State {
	return State{
		Screen:    e.story.Intro,
		Inventory: NewInventory(),
		Minute:    e.story.StartMinute,
	}
}

// Screen resolves the current screen definition for a state.
func (e *Engine) Screen(s State) Screen {
	return e.story.Screen(s.Screen, s, e.hero)
}

// Advance moves the dialogue cursor forward, skipping blank lines.
// Reading past the last line reveals the choices instead. Inventory
// and clock are untouched.
func (e *Engine) Advance(s State) State {
	if s.Complete {
		return s
	}
	lines := e.Screen(s).Lines
	if len(lines) == 0 || s.DialogueIndex >= len(lines)-1 {
		s.ChoicesVisible = true
		return s
	}
	idx := s.DialogueIndex + 1
	for idx < len(lines)-1 && lines[idx] == "" {
		idx++
	}
	s.DialogueIndex = idx
	s.ChoicesVisible = false
	return s
}

// Choose commits a player choice: resolves item grants against the
// rule table, determines the actual destination (including the
// automatic hub return after a collection), and classifies the ending
// when the destination is terminal.
func (e *Engine) Choose(s State, c Choice) State {
	if s.Complete {
		return s
	}

	inv := s.Inventory
	accepted := 0
	blocked := ""
	for _, item := range c.Grants {
		if inv.Has(item) {
			continue
		}
		// Items accepted earlier in this loop are visible to later
		// checks, so a choice can grant a chain in declared order.
		v := e.story.Rules.Check(item, inv)
		if !v.Accepted {
			blocked = v.Reason
			if blocked == "" {
				blocked = fmt.Sprintf("%s slips away - something is still missing.", e.story.ItemLabel(item))
			}
			e.events.ItemBlocked(item, blocked)
			continue
		}
		inv = inv.with(item)
		accepted++
		e.events.ItemCollected(item)
	}

	dest := c.Destination
	if accepted > 0 && !c.Stay {
		switch e.story.Kind(dest) {
		case KindHub, KindConsole, KindReview, KindEnding:
			// These destinations opt out of the hub bounce.
		default:
			dest = e.story.Hub
		}
	}

	next := State{
		Screen:    dest,
		Inventory: inv,
		Minute:    s.Minute,
		Blocked:   blocked,
	}
	if e.story.Kind(dest) == KindEnding {
		next.Complete = true
		next.Ending = Classify(s.Minute, e.story.StartMinute, e.story.DeadlineMinute)
		next.ChoicesVisible = true
		e.events.GameEnded(next.Ending)
	}
	e.events.ScreenEntered(dest)
	return next
}

// Tick advances the in-world clock by one minute. Reaching the
// deadline clamps the clock, forces the terminal screen and
// classifies the session as a failure regardless of inventory. Ticks
// on a complete state are no-ops, so a stray scheduled tick cannot
// reopen or reclassify a finished session.
func (e *Engine) Tick(s State) State {
	if s.Complete {
		return s
	}
	s.Minute++
	if s.Minute >= e.story.DeadlineMinute {
		s.Minute = e.story.DeadlineMinute
		s.Screen = e.story.Ending
		s.DialogueIndex = 0
		s.ChoicesVisible = true
		s.Complete = true
		s.Ending = EndingFailure
		s.Blocked = ""
		e.events.GameEnded(EndingFailure)
		e.events.ScreenEntered(s.Screen)
	}
	return s
}

// Remaining returns the in-world minutes left until the deadline.
func (e *Engine) Remaining(s State) int {
	left := e.story.DeadlineMinute - s.Minute
	if left < 0 {
		return 0
	}
	return left
}

// Elapsed returns the in-world minutes since the session started.
func (e *Engine) Elapsed(s State) int {
	return s.Minute - e.story.StartMinute
}

// FormatClock renders a minutes-since-00:00 value the way the party
// flyer would: "11:42 PM", or the midnight banner at the deadline.
func FormatClock(minute int) string {
	hours := minute / 60
	mins := minute % 60
	switch {
	case hours == 23:
		return fmt.Sprintf("11:%02d PM", mins)
	case hours >= 24 || hours == 0:
		return "12:00 AM - MIDNIGHT!"
	default:
		return fmt.Sprintf("%d:%02d AM", hours, mins)
	}
}
