package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval bounds how stale the track-finished check can be; a track
// ending is noticed at most this late.
const tickInterval = 50 * time.Millisecond

// TickMsg is the periodic reconcile/refresh tick.
type TickMsg time.Time

// TickCmd schedules the next tick.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
