package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbreton/spindle/internal/app"
	"github.com/lbreton/spindle/internal/config"
	"github.com/lbreton/spindle/internal/errmsg"
	"github.com/lbreton/spindle/internal/library"
	"github.com/lbreton/spindle/internal/logger"
	"github.com/lbreton/spindle/internal/mpris"
	"github.com/lbreton/spindle/internal/playback"
	"github.com/lbreton/spindle/internal/player"
	"github.com/lbreton/spindle/internal/playlist"
)

var (
	flagDir = kingpin.Flag("dir", "Directory to scan for audio files.").
		Short('d').Default(".").String()
	flagVolume = kingpin.Flag("volume", "Initial volume between 0 and 1.").
			Short('v').Default(fmt.Sprintf("%g", config.DefaultVolume)).Float64()
)

func main() {
	os.Exit(run())
}

func run() int {
	kingpin.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpLoadConfig, err))
		return 1
	}

	log, closeLog := logger.Open(cfg.LogLevel)
	defer closeLog()

	// Flags win over config; config wins over built-in defaults.
	dir := *flagDir
	if dir == "." && cfg.DefaultDir != "" {
		dir = cfg.DefaultDir
	}
	volume := cfg.Volume
	if *flagVolume != config.DefaultVolume {
		volume = *flagVolume
	}

	tracks, err := library.Scan(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpScanTracks, dir, err))
		return 1
	}
	log.Info().Str("dir", dir).Int("tracks", len(tracks)).Msg("library scanned")

	list, err := playlist.New(tracks)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpScanTracks, dir, err))
		return 1
	}

	p := player.New(volume)
	if err := p.Open(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpOpenDevice, err))
		return 1
	}

	coordinator := playback.New(p, list, log)
	defer coordinator.Close()

	coordinator.PlayCurrent()

	if adapter, err := mpris.New(coordinator); err != nil {
		// Media-key integration is optional; keep playing without it
		log.Warn().Err(err).Msg("mpris unavailable")
	} else {
		defer adapter.Close()
	}

	program := tea.NewProgram(app.New(coordinator), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpRunUI, err))
		return 1
	}

	return 0
}
