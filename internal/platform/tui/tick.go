// Package tui provides the Bubble Tea integration for the party
// platform. It handles the terminal UI loop, input mapping, the
// in-world clock schedule and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the in-world clock by one minute. Gen identifies
// the tick chain that scheduled it: a pending tick cannot be
// cancelled, so a restart bumps the model's generation and ticks from
// the previous session are dropped on arrival.
type TickMsg struct {
	Gen int
}

// tickCmd schedules the next clock tick. The tick chain is the timer
// driver: whoever stops returning this command stops the clock, which
// is exactly what happens the moment a session completes. Quitting
// the program cancels any pending tick.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}
