// Package playback ties the playlist and the player together and applies
// the auto-advance policy.
package playback

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/lbreton/spindle/internal/player"
	"github.com/lbreton/spindle/internal/playlist"
)

// Coordinator owns one playlist and one player and is the single entry
// point for every state change: user commands and the reconcile tick both
// go through it. A single mutex guards the pair; the TUI update loop and
// the MPRIS adapter are separate call sites, and critical sections stay at
// single-operation granularity.
//
// Per-track play failures are logged and swallowed: one bad file must not
// interrupt an interactive session, and playback stays in its prior state.
type Coordinator struct {
	mu     sync.Mutex
	player player.Interface
	list   *playlist.Playlist
	log    zerolog.Logger
}

// New creates a coordinator over the given player and playlist.
func New(p player.Interface, list *playlist.Playlist, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		player: p,
		list:   list,
		log:    log,
	}
}

// PlayCurrent starts playback of the track under the cursor.
func (c *Coordinator) PlayCurrent() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startTrack(c.list.Current())
}

// Next advances the cursor (wrapping at the end) and plays the new track.
func (c *Coordinator) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startTrack(c.list.Advance())
}

// Previous retreats the cursor (wrapping at the start) and plays the new track.
func (c *Coordinator) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startTrack(c.list.Retreat())
}

// PlayIndex selects the track at index and plays it. Out-of-range indices
// are a no-op; digit shortcuts map directly here.
func (c *Coordinator) PlayIndex(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if track, ok := c.list.SelectIndex(index); ok {
		c.startTrack(track)
	}
}

// Toggle flips between playing and paused.
func (c *Coordinator) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.player.Toggle()
}

// Pause pauses playback.
func (c *Coordinator) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.player.Pause()
}

// Resume resumes paused playback.
func (c *Coordinator) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.player.Resume()
}

// SetVolume sets the volume level (clamped by the player).
func (c *Coordinator) SetVolume(level float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.player.SetVolume(level)
}

// VolumeUp raises the volume by one step.
func (c *Coordinator) VolumeUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.player.VolumeUp()
}

// VolumeDown lowers the volume by one step.
func (c *Coordinator) VolumeDown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.player.VolumeDown()
}

// ReconcileTick runs one pass of the auto-advance policy: when the user
// intends to be playing and the sink has drained, advance the cursor and
// start the next track. A paused player never auto-advances, so a pause
// racing a track ending at nearly the same tick stays paused. Returns true
// when a track change happened.
//
// A single-track playlist advances onto itself and restarts; that is the
// intended looping behavior.
func (c *Coordinator) ReconcileTick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.player.State() != player.Playing || !c.player.Finished() {
		return false
	}
	c.startTrack(c.list.Advance())
	return true
}

// State returns the current transport state.
func (c *Coordinator) State() player.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player.State()
}

// Volume returns the stored volume level.
func (c *Coordinator) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player.Volume()
}

// CurrentTrack returns the track under the cursor.
func (c *Coordinator) CurrentTrack() playlist.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Current()
}

// CurrentIndex returns the cursor position.
func (c *Coordinator) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.CurrentIndex()
}

// Len returns the playlist length.
func (c *Coordinator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Len()
}

// Snapshot returns the cursor and track list atomically for rendering.
func (c *Coordinator) Snapshot() (int, []playlist.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Snapshot()
}

// Close releases the player's audio device.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.player.Close()
}

// startTrack plays the given track, logging and swallowing failures.
// Callers must hold c.mu.
func (c *Coordinator) startTrack(track playlist.Track) {
	if err := c.player.Play(track.Path); err != nil {
		c.log.Warn().
			Err(err).
			Str("path", track.Path).
			Msg("failed to play track")
	}
}
