package player

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	Open() error
	Play(path string) error
	Pause()
	Resume()
	Toggle()
	State() State
	Finished() bool
	SetVolume(level float64)
	Volume() float64
	VolumeUp()
	VolumeDown()
	Close()
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
