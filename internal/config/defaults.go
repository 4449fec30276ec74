package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/double128.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/double128.yaml and is used if the embed fails to parse.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Title:      "Double to 128",
			StarGlyph:  "*",
			EmptyGlyph: "·",
			Mouse:      true,
			ShowHelp:   true,
		},
		Theme: ThemeConfig{
			Cursor: "bright_white",
			Star:   "bright_yellow",
			Tiles: map[int]string{
				2:   "white",
				4:   "bright_cyan",
				8:   "bright_green",
				16:  "yellow",
				32:  "orange",
				64:  "bright_magenta",
				128: "bright_red",
			},
		},
		Server: ServerConfig{
			Address:     ":23234",
			HostKeyPath: "~/.double128/host_key",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
