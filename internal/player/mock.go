package player

// Mock is a test double for Player. It mirrors the transport state rules
// without touching the audio device.
type Mock struct {
	state       State
	volumeLevel float64
	finished    bool
	playErr     error
	playCalls   []string
	closed      bool
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped}
}

func (m *Mock) Open() error { return nil }

func (m *Mock) Play(path string) error {
	m.playCalls = append(m.playCalls, path)
	if m.playErr != nil {
		m.finished = true // sink cleared, nothing loaded
		return m.playErr
	}
	m.state = Playing
	m.finished = false
	return nil
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	switch m.state {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Finished() bool { return m.finished }

func (m *Mock) SetVolume(level float64) { m.volumeLevel = clampLevel(level) }

func (m *Mock) Volume() float64 { return m.volumeLevel }

func (m *Mock) VolumeUp() { m.SetVolume(m.volumeLevel + volumeStep) }

func (m *Mock) VolumeDown() { m.SetVolume(m.volumeLevel - volumeStep) }

func (m *Mock) Close() { m.closed = true }

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) Closed() bool { return m.closed }

// SimulateFinished marks the sink as drained, as after a natural end of
// track. The transport state is deliberately left alone.
func (m *Mock) SimulateFinished() { m.finished = true }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
