// Package app contains the root bubbletea model.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbreton/spindle/internal/keymap"
	"github.com/lbreton/spindle/internal/playback"
)

// ViewMode selects which view fills the content area.
type ViewMode int

const (
	ViewPlayer ViewMode = iota
	ViewPlaylist
	ViewHelp
)

// Model is the root application model. All playback state lives in the
// coordinator; the model only holds view state.
type Model struct {
	coordinator *playback.Coordinator

	mode     ViewMode
	selected int // playlist-view selection, independent of the playing cursor

	playerKeys   *keymap.Resolver
	playlistKeys *keymap.Resolver
	helpKeys     *keymap.Resolver

	width  int
	height int
}

// New creates the root model over a playback coordinator.
func New(c *playback.Coordinator) Model {
	return Model{
		coordinator:  c,
		mode:         ViewPlayer,
		selected:     c.CurrentIndex(),
		playerKeys:   keymap.NewResolver(keymap.ByContext("player")),
		playlistKeys: keymap.NewResolver(keymap.ByContext("playlist")),
		helpKeys:     keymap.NewResolver(keymap.ByContext("help")),
	}
}

// Init implements tea.Model. The tick runs for the whole session: it
// drives both the auto-advance check and display refresh.
func (m Model) Init() tea.Cmd {
	return TickCmd()
}
