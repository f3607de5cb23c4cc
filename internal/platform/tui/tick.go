// Package tui provides the Bubble Tea host for the runner.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

// TickMsg is sent to trigger a simulation frame. Ticket ties it to the run
// that scheduled it; ticks from an earlier run are dropped.
type TickMsg struct {
	Ticket runner.Ticket
	Time   time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after 1/tickRate seconds.
func tickCmd(tickRate int, ticket runner.Ticket) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Ticket: ticket, Time: t}
	})
}
