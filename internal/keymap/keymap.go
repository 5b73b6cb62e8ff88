package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "player", "playlist", "help"
}

// All contains every key binding, grouped by view context. The help view
// is generated from this table.
var All = []Binding{
	// Player view
	{[]string{"q", "esc", "ctrl+c"}, ActionQuit, "Quit", "player"},
	{[]string{" ", "p"}, ActionTogglePause, "Play/pause", "player"},
	{[]string{"n", "right"}, ActionNextTrack, "Next track", "player"},
	{[]string{"b", "left"}, ActionPrevTrack, "Previous track", "player"},
	{[]string{"+", "="}, ActionVolumeUp, "Volume up", "player"},
	{[]string{"-"}, ActionVolumeDown, "Volume down", "player"},
	{[]string{"l", "tab"}, ActionViewPlaylist, "Playlist view", "player"},
	{[]string{"h", "f1"}, ActionViewHelp, "Help", "player"},

	// Playlist view
	{[]string{"q", "esc", "tab"}, ActionBack, "Back to player", "playlist"},
	{[]string{"ctrl+c"}, ActionQuit, "Quit", "playlist"},
	{[]string{"up", "k"}, ActionMoveUp, "Move up", "playlist"},
	{[]string{"down", "j"}, ActionMoveDown, "Move down", "playlist"},
	{[]string{"enter"}, ActionSelect, "Play selected", "playlist"},

	// Help view
	{[]string{"q", "esc", "h"}, ActionBack, "Back to player", "help"},
	{[]string{"ctrl+c"}, ActionQuit, "Quit", "help"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
