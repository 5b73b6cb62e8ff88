// Package styles defines the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the application.
type Theme struct {
	Primary lipgloss.Color // accent - headers, gauge fill
	FgBase  lipgloss.Color // primary text
	FgMuted lipgloss.Color // secondary text
	Border  lipgloss.Color // panel borders
	Playing lipgloss.Color // currently playing track
	Paused  lipgloss.Color // paused indicator
	Error   lipgloss.Color // error text
}

var defaultTheme = Theme{
	Primary: lipgloss.Color("#7dd3fc"),
	FgBase:  lipgloss.Color("#c0c0c0"),
	FgMuted: lipgloss.Color("#808080"),
	Border:  lipgloss.Color("#585858"),
	Playing: lipgloss.Color("#42b883"),
	Paused:  lipgloss.Color("#f1a208"),
	Error:   lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// Panel returns the bordered panel style shared by all views.
func (t *Theme) Panel() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
}

// Title returns the bold accent style for panel titles.
func (t *Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
}

// Muted returns the dimmed text style.
func (t *Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgMuted)
}

// Base returns the default text style.
func (t *Theme) Base() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgBase)
}
