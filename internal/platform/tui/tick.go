// Package tui provides the Bubble Tea integration for the shooter.
// It turns key messages into game events, paces frames with the engine
// scheduler and prints the canvas as half-block cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a scheduler check.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after d.
func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Millisecond
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
