package player

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_IsActive(t *testing.T) {
	if Stopped.IsActive() {
		t.Error("Stopped should not be active")
	}
	if !Playing.IsActive() {
		t.Error("Playing should be active")
	}
	if !Paused.IsActive() {
		t.Error("Paused should be active")
	}
}

func TestPlayer_TransportNoOpsWhileStopped(t *testing.T) {
	p := New(0.5)

	p.Pause()
	if p.State() != Stopped {
		t.Errorf("Pause while stopped: state = %v, want Stopped", p.State())
	}

	p.Resume()
	if p.State() != Stopped {
		t.Errorf("Resume while stopped: state = %v, want Stopped", p.State())
	}

	p.Toggle()
	if p.State() != Stopped {
		t.Errorf("Toggle while stopped: state = %v, want Stopped", p.State())
	}
}

func TestPlayer_PlayUnsupportedFormat(t *testing.T) {
	p := New(0.5)

	err := p.Play("/music/track.flac")

	if err == nil {
		t.Fatal("Play should reject unsupported formats")
	}
	// Failed loads leave the transport state untouched
	if p.State() != Stopped {
		t.Errorf("state = %v, want Stopped", p.State())
	}
}

func TestPlayer_FinishedWithEmptySink(t *testing.T) {
	p := New(0.5)

	if !p.Finished() {
		t.Error("Finished() should be true when nothing was ever queued")
	}
}

func TestMock_ToggleIsInvolution(t *testing.T) {
	m := NewMock()
	if err := m.Play("/a.mp3"); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	for _, start := range []State{Playing, Paused} {
		m.SetState(start)
		m.Toggle()
		m.Toggle()
		if m.State() != start {
			t.Errorf("Toggle twice from %v = %v, want %v", start, m.State(), start)
		}
	}
}

func TestMock_FinishedIndependentOfState(t *testing.T) {
	m := NewMock()
	_ = m.Play("/a.mp3")

	m.SimulateFinished()

	// Sink truth and intent diverge until the coordinator reconciles them
	if m.State() != Playing {
		t.Errorf("state = %v, want Playing", m.State())
	}
	if !m.Finished() {
		t.Error("Finished() should report the drained sink")
	}
}
