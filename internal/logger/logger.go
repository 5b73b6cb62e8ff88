// Package logger provides structured logging using zerolog. Output always
// goes to a file: while the TUI owns the terminal, writing to stdout or
// stderr would corrupt the layout.
package logger

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

// Open initializes a logger writing JSON lines to
// $XDG_STATE_HOME/spindle/spindle.log and returns it together with a
// close function. Logging is best effort: when the file cannot be opened
// a disabled logger is returned and the application carries on.
func Open(level string) (zerolog.Logger, func()) {
	dir := filepath.Join(xdg.StateHome, "spindle")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "spindle.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}
	}

	log := zerolog.New(f).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	return log, func() { _ = f.Close() }
}

// parseLevel parses the log level string, defaulting to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
