package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lbreton/spindle/internal/keymap"
	"github.com/lbreton/spindle/internal/playlist"
	"github.com/lbreton/spindle/internal/ui/playerbar"
	"github.com/lbreton/spindle/internal/ui/styles"
)

// previewLen is how many tracks the player view lists below the gauge.
const previewLen = 10

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var content string
	switch m.mode {
	case ViewPlayer:
		content = m.viewPlayer()
	case ViewPlaylist:
		content = m.viewPlaylist()
	case ViewHelp:
		content = m.viewHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewFooter(),
	)
}

func (m Model) viewHeader() string {
	t := styles.T()
	title := t.Title().Render("♫ spindle")
	return t.Panel().
		Width(max(m.width-2, 0)).
		Align(lipgloss.Center).
		Render(title)
}

func (m Model) viewFooter() string {
	t := styles.T()

	var hint string
	switch m.mode {
	case ViewPlayer:
		hint = "Space: Play/Pause │ N/B: Next/Prev │ +/-: Volume │ Tab: Playlist │ H: Help │ Q: Quit"
	case ViewPlaylist:
		hint = "↑↓/J/K: Navigate │ Enter: Play │ Tab/Q: Back"
	case ViewHelp:
		hint = "Q/H/Esc: Back"
	}

	return t.Panel().
		Width(max(m.width-2, 0)).
		Align(lipgloss.Center).
		Render(t.Muted().Render(hint))
}

func (m Model) viewPlayer() string {
	cursor, tracks := m.coordinator.Snapshot()

	state := playerbar.State{
		TransportState: m.coordinator.State(),
		Title:          tracks[cursor].Title,
		Index:          cursor,
		Total:          len(tracks),
		Volume:         m.coordinator.Volume(),
	}

	preview := tracks
	if len(preview) > previewLen {
		preview = preview[:previewLen]
	}

	t := styles.T()
	list := t.Panel().
		Width(max(m.width-2, 0)).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			t.Muted().Render("Tracks (Tab for full playlist)"),
			m.renderTracks(preview, cursor, -1),
		))

	return lipgloss.JoinVertical(lipgloss.Left,
		playerbar.RenderNowPlaying(state, m.width),
		playerbar.RenderVolume(state.Volume, m.width),
		list,
	)
}

func (m Model) viewPlaylist() string {
	cursor, tracks := m.coordinator.Snapshot()
	t := styles.T()

	// Keep the selection visible when the list is taller than the window
	visible := max(m.height-8, 3)
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := min(start+visible, len(tracks))

	rows := m.renderTracksOffset(tracks[start:end], start, cursor, m.selected)

	return t.Panel().
		Width(max(m.width-2, 0)).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			t.Title().Render("Playlist"),
			rows,
		))
}

func (m Model) viewHelp() string {
	t := styles.T()
	var b strings.Builder

	sections := []struct {
		title   string
		context string
	}{
		{"Player", "player"},
		{"Playlist", "playlist"},
		{"Help", "help"},
	}

	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(t.Title().Render(section.title + " keys"))
		b.WriteString("\n")
		for _, binding := range keymap.ByContext(section.context) {
			keys := strings.Join(binding.Keys, ", ")
			b.WriteString(fmt.Sprintf("  %-18s %s\n",
				t.Base().Render(keys),
				t.Muted().Render(binding.Description)))
		}
	}
	b.WriteString("\n")
	b.WriteString(t.Muted().Render("  1-9                Play track by number"))

	return t.Panel().
		Width(max(m.width-2, 0)).
		Render(b.String())
}

// renderTracks renders rows starting at list index zero.
func (m Model) renderTracks(tracks []playlist.Track, playing, selected int) string {
	return m.renderTracksOffset(tracks, 0, playing, selected)
}

// renderTracksOffset renders rows for tracks whose list indices start at
// offset. The playing track gets a marker; selected (when >= 0) gets the
// selection highlight used by the playlist view.
func (m Model) renderTracksOffset(tracks []playlist.Track, offset, playing, selected int) string {
	t := styles.T()
	rows := make([]string, 0, len(tracks))

	for i, track := range tracks {
		index := offset + i
		marker := "  "
		style := t.Base()

		if index == playing {
			marker = "♪ "
			style = lipgloss.NewStyle().Foreground(t.Playing).Bold(true)
		}
		if index == selected {
			style = style.Underline(true)
			marker = "> "
		}

		rows = append(rows, style.Render(fmt.Sprintf("%s%d. %s", marker, index+1, track.Title)))
	}

	return strings.Join(rows, "\n")
}
