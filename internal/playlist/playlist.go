package playlist

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrEmptyCollection is returned when a playlist would be created with no tracks.
var ErrEmptyCollection = errors.New("no playable tracks")

// Track references a single playable audio file.
type Track struct {
	Path  string // file path for playback
	Title string // display name, the file stem by default
}

// NewTrack creates a track reference for the given path.
func NewTrack(path string) Track {
	base := filepath.Base(path)
	return Track{
		Path:  path,
		Title: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// Playlist holds a fixed, ordered collection of tracks and a cursor.
// The track list never changes after construction; only the cursor moves.
// Both cursor-wrap boundaries are closed: advancing past the last track
// lands on the first, retreating before the first lands on the last.
type Playlist struct {
	tracks []Track
	cursor int
}

// New creates a playlist from the given tracks with the cursor on the first.
// Returns ErrEmptyCollection if tracks is empty; a playlist is never
// constructed without at least one track.
func New(tracks []Track) (*Playlist, error) {
	if len(tracks) == 0 {
		return nil, ErrEmptyCollection
	}
	owned := make([]Track, len(tracks))
	copy(owned, tracks)
	return &Playlist{tracks: owned}, nil
}

// Current returns the track at the cursor.
func (p *Playlist) Current() Track {
	return p.tracks[p.cursor]
}

// CurrentIndex returns the cursor position.
func (p *Playlist) CurrentIndex() int {
	return p.cursor
}

// Advance moves the cursor to the next track, wrapping from last to first,
// and returns the new current track.
func (p *Playlist) Advance() Track {
	p.cursor = (p.cursor + 1) % len(p.tracks)
	return p.Current()
}

// Retreat moves the cursor to the previous track, wrapping from first to
// last, and returns the new current track.
func (p *Playlist) Retreat() Track {
	p.cursor = (p.cursor - 1 + len(p.tracks)) % len(p.tracks)
	return p.Current()
}

// SelectIndex moves the cursor to index and returns the track there.
// An out-of-range index is a no-op returning false, not an error; digit
// shortcuts and list selection rely on this.
func (p *Playlist) SelectIndex(index int) (Track, bool) {
	if index < 0 || index >= len(p.tracks) {
		return Track{}, false
	}
	p.cursor = index
	return p.Current(), true
}

// Snapshot returns the cursor and a copy of the track list for display.
func (p *Playlist) Snapshot() (int, []Track) {
	tracks := make([]Track, len(p.tracks))
	copy(tracks, p.tracks)
	return p.cursor, tracks
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}
