package playback

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbreton/spindle/internal/player"
	"github.com/lbreton/spindle/internal/playlist"
)

func newCoordinator(t *testing.T, paths ...string) (*Coordinator, *player.Mock) {
	t.Helper()
	tracks := make([]playlist.Track, 0, len(paths))
	for _, p := range paths {
		tracks = append(tracks, playlist.NewTrack(p))
	}
	list, err := playlist.New(tracks)
	require.NoError(t, err)

	mock := player.NewMock()
	return New(mock, list, zerolog.Nop()), mock
}

func TestCoordinator_PlayCurrent(t *testing.T) {
	c, mock := newCoordinator(t, "/a.mp3", "/b.mp3")

	c.PlayCurrent()

	assert.Equal(t, []string{"/a.mp3"}, mock.PlayCalls())
	assert.Equal(t, player.Playing, c.State())
	assert.Equal(t, 0, c.CurrentIndex())
}

func TestCoordinator_NextPrevious(t *testing.T) {
	c, mock := newCoordinator(t, "/a.mp3", "/b.mp3", "/c.mp3")

	c.Next()
	assert.Equal(t, 1, c.CurrentIndex())

	c.Previous()
	assert.Equal(t, 0, c.CurrentIndex())

	// Wrap at both boundaries
	c.Previous()
	assert.Equal(t, 2, c.CurrentIndex())
	c.Next()
	assert.Equal(t, 0, c.CurrentIndex())

	assert.Equal(t, []string{"/b.mp3", "/a.mp3", "/c.mp3", "/a.mp3"}, mock.PlayCalls())
}

func TestCoordinator_PlayIndex(t *testing.T) {
	c, mock := newCoordinator(t, "/a.mp3", "/b.mp3", "/c.mp3")

	c.PlayIndex(2)
	assert.Equal(t, 2, c.CurrentIndex())
	assert.Equal(t, []string{"/c.mp3"}, mock.PlayCalls())
}

func TestCoordinator_PlayIndex_OutOfRange(t *testing.T) {
	c, mock := newCoordinator(t, "/a.mp3", "/b.mp3")
	c.PlayIndex(1)

	c.PlayIndex(-1)
	c.PlayIndex(5)

	// Cursor unchanged, nothing extra played
	assert.Equal(t, 1, c.CurrentIndex())
	assert.Equal(t, []string{"/b.mp3"}, mock.PlayCalls())
}

func TestCoordinator_ReconcileTick_AdvancesWhenFinished(t *testing.T) {
	c, mock := newCoordinator(t, "/a.mp3", "/b.mp3", "/c.mp3")
	c.PlayCurrent()

	mock.SimulateFinished()
	advanced := c.ReconcileTick()

	require.True(t, advanced)
	// Cursor advanced by exactly one and the new track is playing
	assert.Equal(t, 1, c.CurrentIndex())
	assert.Equal(t, player.Playing, c.State())
	assert.Equal(t, []string{"/a.mp3", "/b.mp3"}, mock.PlayCalls())
}

func TestCoordinator_ReconcileTick_NoOpWhileSounding(t *testing.T) {
	c, mock := newCoordinator(t, "/a.mp3", "/b.mp3")
	c.PlayCurrent()

	advanced := c.ReconcileTick()

	assert.False(t, advanced)
	assert.Equal(t, 0, c.CurrentIndex())
	assert.Equal(t, []string{"/a.mp3"}, mock.PlayCalls())
}

func TestCoordinator_ReconcileTick_PausedNeverAdvances(t *testing.T) {
	c, mock := newCoordinator(t, "/a.mp3", "/b.mp3")
	c.PlayCurrent()
	c.Pause()

	// Track ends while paused: intent wins, no auto-advance
	mock.SimulateFinished()
	advanced := c.ReconcileTick()

	assert.False(t, advanced)
	assert.Equal(t, 0, c.CurrentIndex())
	assert.Equal(t, player.Paused, c.State())
	assert.Equal(t, []string{"/a.mp3"}, mock.PlayCalls())
}

func TestCoordinator_ReconcileTick_StoppedNeverAdvances(t *testing.T) {
	c, _ := newCoordinator(t, "/a.mp3", "/b.mp3")

	advanced := c.ReconcileTick()

	assert.False(t, advanced)
	assert.Equal(t, 0, c.CurrentIndex())
	assert.Equal(t, player.Stopped, c.State())
}

func TestCoordinator_ReconcileTick_SingleTrackLoops(t *testing.T) {
	c, mock := newCoordinator(t, "/only.mp3")
	c.PlayCurrent()

	mock.SimulateFinished()
	advanced := c.ReconcileTick()

	require.True(t, advanced)
	assert.Equal(t, 0, c.CurrentIndex())
	assert.Equal(t, []string{"/only.mp3", "/only.mp3"}, mock.PlayCalls())
}

func TestCoordinator_PlayFailureIsSwallowed(t *testing.T) {
	c, mock := newCoordinator(t, "/a.mp3", "/bad.mp3", "/c.mp3")
	c.PlayCurrent()
	require.Equal(t, player.Playing, c.State())

	mock.SetPlayError(errors.New("decode failed"))
	c.Next()

	// Command dropped: prior transport state preserved, cursor moved
	assert.Equal(t, player.Playing, c.State())
	assert.Equal(t, 1, c.CurrentIndex())
}

func TestCoordinator_AutoAdvanceSkipsPastBadTrack(t *testing.T) {
	c, mock := newCoordinator(t, "/a.mp3", "/bad.mp3", "/c.mp3")
	c.PlayCurrent()

	// /a.mp3 ends; /bad.mp3 fails to load, leaving the sink empty while the
	// intent is still Playing, so the following tick moves on to /c.mp3.
	mock.SimulateFinished()
	mock.SetPlayError(errors.New("decode failed"))
	c.ReconcileTick()
	assert.Equal(t, 1, c.CurrentIndex())

	mock.SetPlayError(nil)
	c.ReconcileTick()
	assert.Equal(t, 2, c.CurrentIndex())
	assert.Equal(t, player.Playing, c.State())
}

func TestCoordinator_VolumeControls(t *testing.T) {
	c, _ := newCoordinator(t, "/a.mp3")

	c.SetVolume(0.5)
	c.VolumeUp()
	assert.InDelta(t, 0.6, c.Volume(), 1e-9)

	c.SetVolume(7)
	assert.Equal(t, 1.0, c.Volume())

	for i := 0; i < 15; i++ {
		c.VolumeDown()
	}
	assert.Equal(t, 0.0, c.Volume())
}

func TestCoordinator_Close(t *testing.T) {
	c, mock := newCoordinator(t, "/a.mp3")

	c.Close()

	assert.True(t, mock.Closed())
}
