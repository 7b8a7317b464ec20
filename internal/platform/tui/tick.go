// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, the menu, the scoreboard
// and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-stacker/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick. Wall-clock
// spacing matches the simulated time games advance per Step.
func tickCmd(tickRate int) tea.Cmd {
	interval := core.RuntimeConfig{TickRate: tickRate}.TickDuration()
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
