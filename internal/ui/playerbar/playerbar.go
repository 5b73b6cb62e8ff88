// Package playerbar renders the now-playing panel and the volume gauge.
package playerbar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/lbreton/spindle/internal/player"
	"github.com/lbreton/spindle/internal/ui/styles"
)

const (
	playSymbol    = "▶"
	pauseSymbol   = "⏸"
	stoppedSymbol = "⏹"
)

// State holds everything needed to render the now-playing panel.
type State struct {
	TransportState player.State
	Title          string
	Index          int // cursor position, zero-based
	Total          int
	Volume         float64 // 0.0 to 1.0
}

// statusLine returns the colored transport status indicator.
func statusLine(s State) string {
	t := styles.T()
	switch s.TransportState {
	case player.Playing:
		return lipgloss.NewStyle().Foreground(t.Playing).Bold(true).Render(playSymbol + " Playing")
	case player.Paused:
		return lipgloss.NewStyle().Foreground(t.Paused).Bold(true).Render(pauseSymbol + " Paused")
	default:
		return lipgloss.NewStyle().Foreground(t.Error).Bold(true).Render(stoppedSymbol + " Stopped")
	}
}

// RenderNowPlaying renders the bordered now-playing panel.
func RenderNowPlaying(s State, width int) string {
	t := styles.T()
	innerWidth := max(width-2, 0)

	track := t.Base().Bold(true).Render(s.Title)
	counter := t.Muted().Render(fmt.Sprintf("%d/%d tracks", s.Index+1, s.Total))

	content := lipgloss.JoinVertical(lipgloss.Left,
		statusLine(s),
		"",
		"Track: "+track,
		counter,
	)

	return t.Panel().
		Width(innerWidth).
		Render(content)
}

// RenderVolume renders the bordered volume gauge.
func RenderVolume(volume float64, width int) string {
	t := styles.T()
	innerWidth := max(width-2, 0)

	gauge := progress.New(
		progress.WithSolidFill(string(t.Primary)),
		progress.WithoutPercentage(),
	)
	gauge.Width = max(innerWidth-2, 1)

	label := t.Muted().Render(fmt.Sprintf("Volume: %d%%", int(volume*100+0.5)))
	content := lipgloss.JoinVertical(lipgloss.Left, label, gauge.ViewAs(volume))

	return t.Panel().
		Width(innerWidth).
		Render(content)
}
