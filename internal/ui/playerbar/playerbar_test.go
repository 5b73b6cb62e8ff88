package playerbar

import (
	"strings"
	"testing"

	"github.com/lbreton/spindle/internal/player"
)

func TestRenderNowPlaying_ShowsTrackAndCounter(t *testing.T) {
	s := State{
		TransportState: player.Playing,
		Title:          "some song",
		Index:          2,
		Total:          9,
		Volume:         0.5,
	}

	out := RenderNowPlaying(s, 60)

	if !strings.Contains(out, "some song") {
		t.Error("output should contain the track title")
	}
	if !strings.Contains(out, "3/9 tracks") {
		t.Error("output should contain the one-based track counter")
	}
	if !strings.Contains(out, "Playing") {
		t.Error("output should contain the transport status")
	}
}

func TestRenderNowPlaying_PausedStatus(t *testing.T) {
	s := State{TransportState: player.Paused, Title: "x", Total: 1}

	out := RenderNowPlaying(s, 40)

	if !strings.Contains(out, "Paused") {
		t.Error("output should show the paused status")
	}
}

func TestRenderVolume_Percentage(t *testing.T) {
	tests := []struct {
		volume float64
		want   string
	}{
		{0.5, "Volume: 50%"},
		{0, "Volume: 0%"},
		{1, "Volume: 100%"},
		{0.35, "Volume: 35%"},
	}
	for _, tt := range tests {
		out := RenderVolume(tt.volume, 40)
		if !strings.Contains(out, tt.want) {
			t.Errorf("RenderVolume(%v) missing %q", tt.volume, tt.want)
		}
	}
}
