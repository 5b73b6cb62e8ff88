package player

// State represents the user-intended transport state.
//
// Valid transitions:
//   - Stopped → Playing (first Play)
//   - Playing → Paused  (Pause)
//   - Paused  → Playing (Resume)
//   - any     → Playing (Play with a new track)
//
// Stopped exists only before the first track is loaded; nothing transitions
// back to it. A drained sink does not change the state — that is reported
// separately by Finished.
//
// No-op transitions (handled gracefully):
//   - Pause while Paused or Stopped
//   - Resume while Playing or Stopped
//   - Toggle while Stopped
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for display and logging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true once a track has been loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
