// Package config loads the optional TOML configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the user configuration. Command line flags override these
// values; everything here is optional.
type Config struct {
	DefaultDir string  `koanf:"default_dir"` // directory scanned when --dir is not given
	Volume     float64 `koanf:"volume"`      // initial volume, clamped to [0, 1]
	LogLevel   string  `koanf:"log_level"`   // "debug", "info", "warn", "error"
}

// DefaultVolume is used when neither config nor flags set a volume.
const DefaultVolume = 0.5

// Load reads config files in priority order (last wins) and applies
// defaults. A missing config file is not an error.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Volume: DefaultVolume,
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultDir != "" {
		cfg.DefaultDir = expandPath(cfg.DefaultDir)
	}
	cfg.Volume = clampVolume(cfg.Volume)

	return cfg, nil
}

func configPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/spindle/config.toml
		filepath.Join(xdg.ConfigHome, "spindle", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
