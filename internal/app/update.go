package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbreton/spindle/internal/keymap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		if m.coordinator.ReconcileTick() {
			// Keep the playlist-view selection following auto-advance
			m.selected = m.coordinator.CurrentIndex()
		}
		return m, TickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.mode {
	case ViewPlayer:
		return m.handlePlayerKey(key)
	case ViewPlaylist:
		return m.handlePlaylistKey(key)
	case ViewHelp:
		return m.handleHelpKey(key)
	}
	return m, nil
}

func (m Model) handlePlayerKey(key string) (tea.Model, tea.Cmd) {
	// Digit shortcuts jump straight to tracks 1-9; out-of-range digits
	// are dropped by the coordinator.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		index := int(key[0]-'0') - 1
		m.coordinator.PlayIndex(index)
		m.selected = m.coordinator.CurrentIndex()
		return m, nil
	}

	switch m.playerKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionTogglePause:
		m.coordinator.Toggle()
	case keymap.ActionNextTrack:
		m.coordinator.Next()
		m.selected = m.coordinator.CurrentIndex()
	case keymap.ActionPrevTrack:
		m.coordinator.Previous()
		m.selected = m.coordinator.CurrentIndex()
	case keymap.ActionVolumeUp:
		m.coordinator.VolumeUp()
	case keymap.ActionVolumeDown:
		m.coordinator.VolumeDown()
	case keymap.ActionViewPlaylist:
		m.mode = ViewPlaylist
		m.selected = m.coordinator.CurrentIndex()
	case keymap.ActionViewHelp:
		m.mode = ViewHelp
	}
	return m, nil
}

func (m Model) handlePlaylistKey(key string) (tea.Model, tea.Cmd) {
	switch m.playlistKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionBack:
		m.mode = ViewPlayer
	case keymap.ActionMoveUp:
		m.selected = wrapIndex(m.selected-1, m.coordinator.Len())
	case keymap.ActionMoveDown:
		m.selected = wrapIndex(m.selected+1, m.coordinator.Len())
	case keymap.ActionSelect:
		m.coordinator.PlayIndex(m.selected)
		m.mode = ViewPlayer
	}
	return m, nil
}

func (m Model) handleHelpKey(key string) (tea.Model, tea.Cmd) {
	switch m.helpKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionBack:
		m.mode = ViewPlayer
	}
	return m, nil
}

// wrapIndex wraps i into [0, n) at both ends.
func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
