// Package player owns the single live audio output sink.
package player

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// ErrDeviceUnavailable marks failures to open the audio output device.
var ErrDeviceUnavailable = errors.New("audio device unavailable")

// mixRate is the fixed speaker sample rate. Tracks with a different native
// rate are resampled on the fly.
const mixRate = beep.SampleRate(44100)

const (
	extMP3 = ".mp3"
	extWAV = ".wav"
)

// Player drives the speaker and tracks the user-intended transport state.
// The transport state records intent: after the first successful Play the
// state is always Playing or Paused, even when the sink has drained.
// Finished reports the sink-level truth; the two are reconciled by the
// playback coordinator, never collapsed here.
type Player struct {
	state       State
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	streamer    beep.StreamSeekCloser
	file        *os.File
	volumeLevel float64
	done        chan struct{}
	opened      bool
}

// New creates a player with the given initial volume level. The audio
// device is not touched until Open.
func New(volume float64) *Player {
	p := &Player{state: Stopped}
	p.volumeLevel = clampLevel(volume)
	return p
}

// Open initializes the audio output device. Fatal at startup when the
// device cannot be acquired.
func (p *Player) Open() error {
	if p.opened {
		return nil
	}
	if err := speaker.Init(mixRate, mixRate.N(time.Second/10)); err != nil {
		return errors.Mark(errors.Wrap(err, "init speaker"), ErrDeviceUnavailable)
	}
	p.opened = true
	return nil
}

// Play stops and discards any queued audio, then decodes and starts the
// given file. On decode or I/O failure the error is returned and the
// transport state and volume are left untouched; the sink stays empty.
func (p *Player) Play(path string) error {
	p.clear()

	ext := strings.ToLower(filepath.Ext(path))
	if ext != extMP3 && ext != extWAV {
		return errors.Newf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open track")
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "decode %s", filepath.Base(path))
	}

	p.file = f
	p.streamer = streamer

	var playStreamer beep.Streamer = streamer
	if format.SampleRate != mixRate {
		playStreamer = beep.Resample(4, format.SampleRate, mixRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel <= 0,
	}

	done := make(chan struct{})
	p.done = done

	p.state = Playing
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		close(done)
	})))

	return nil
}

// Finished reports whether the sink has no queued audio left. This is
// independent of the transport state: after a natural end of track it
// returns true while the state still reads Playing.
func (p *Player) Finished() bool {
	if p.done == nil {
		return true
	}
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Close releases the audio device.
func (p *Player) Close() {
	p.clear()
	if p.opened {
		speaker.Close()
		p.opened = false
	}
}

// clear empties the sink and releases the current track's resources.
// The transport state is deliberately not touched.
func (p *Player) clear() {
	if p.streamer == nil && p.file == nil {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.done = nil
}
