//go:build linux

// Package mpris exposes playback control over D-Bus so desktop media keys
// and applets can drive the player.
package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/lbreton/spindle/internal/playback"
	"github.com/lbreton/spindle/internal/player"
)

// Adapter connects the playback coordinator to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. The coordinator guards its
// own state, so D-Bus calls may arrive concurrently with the UI loop.
func New(c *playback.Coordinator) (*Adapter, error) {
	a := &Adapter{}
	a.server = server.NewServer("spindle", &rootAdapter{}, &playerAdapter{coordinator: c})

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Spindle", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp3", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	coordinator *playback.Coordinator
}

func (p *playerAdapter) Next() error {
	p.coordinator.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.coordinator.Previous()
	return nil
}

func (p *playerAdapter) Pause() error {
	p.coordinator.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.coordinator.Toggle()
	return nil
}

func (p *playerAdapter) Stop() error {
	// There is no stopped state after the first track; pause instead
	p.coordinator.Pause()
	return nil
}

func (p *playerAdapter) Play() error {
	if p.coordinator.State() == player.Stopped {
		p.coordinator.PlayCurrent()
		return nil
	}
	p.coordinator.Resume()
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.coordinator.State() {
	case player.Playing:
		return types.PlaybackStatusPlaying, nil
	case player.Paused:
		return types.PlaybackStatusPaused, nil
	case player.Stopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	track := p.coordinator.CurrentTrack()
	return types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(track.Path)),
		Title:       track.Title,
		TrackNumber: p.coordinator.CurrentIndex() + 1,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.coordinator.Volume(), nil
}

func (p *playerAdapter) SetVolume(level float64) error {
	p.coordinator.SetVolume(level)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil // Position tracking not exposed
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return true, nil // The playlist wraps, there is always a next track
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
