package player

import "github.com/gopxl/beep/v2/speaker"

// Pause pauses sink output. No-op unless currently playing.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes sink output. No-op unless currently paused; in particular
// a Resume while Stopped is a silent no-op, not an error.
func (p *Player) Resume() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Toggle flips between playing and paused. No-op while stopped.
func (p *Player) Toggle() {
	switch p.state {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
		// Nothing loaded yet
	}
}

// State returns the current transport state.
func (p *Player) State() State { return p.state }
