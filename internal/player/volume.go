package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// volumeStep is the increment used by VolumeUp and VolumeDown.
const volumeStep = 0.1

// SetVolume sets the volume level, clamped to [0, 1]. The stored level
// persists across track changes and is applied to the live sink
// immediately, regardless of transport state.
func (p *Player) SetVolume(level float64) {
	p.volumeLevel = clampLevel(level)

	if p.volume != nil {
		speaker.Lock()
		p.volume.Volume = levelToVolume(p.volumeLevel)
		p.volume.Silent = p.volumeLevel <= 0
		speaker.Unlock()
	}
}

// Volume returns the stored volume level (0.0 to 1.0).
func (p *Player) Volume() float64 {
	return p.volumeLevel
}

// VolumeUp raises the volume by one step.
func (p *Player) VolumeUp() {
	p.SetVolume(p.volumeLevel + volumeStep)
}

// VolumeDown lowers the volume by one step.
func (p *Player) VolumeDown() {
	p.SetVolume(p.volumeLevel - volumeStep)
}

func clampLevel(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}

// levelToVolume converts a linear 0.0-1.0 level to beep's base-2
// logarithmic Volume value: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2. Zero maps to
// -10, effectively silent.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
