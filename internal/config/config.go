// Package config provides YAML-based configuration loading for the game:
// display glyphs, the tile colour theme, the SSH server and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/double128/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Theme   ThemeConfig   `yaml:"theme"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls what is drawn, independent of colours.
type DisplayConfig struct {
	Title      string `yaml:"title"`
	StarGlyph  string `yaml:"star_glyph"`  // Drawn for a pending 128 and the new-game box
	EmptyGlyph string `yaml:"empty_glyph"` // Drawn in pressable cells
	Mouse      bool   `yaml:"mouse"`       // Accept clicks on cells
	ShowHelp   bool   `yaml:"show_help"`   // Show the key help line
}

// ThemeConfig names the colours used for tiles and markers.
// Colour names are those accepted by core.ParseColor.
type ThemeConfig struct {
	Cursor string         `yaml:"cursor"`
	Star   string         `yaml:"star"`
	Tiles  map[int]string `yaml:"tiles"` // tile value -> colour name
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// tileValues lists every value a tile or pending value can take.
var tileValues = map[int]bool{2: true, 4: true, 8: true, 16: true, 32: true, 64: true, 128: true}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Display.StarGlyph) != 1 {
		return fmt.Errorf("display.star_glyph %q must be a single character: %w", c.Display.StarGlyph, ErrInvalid)
	}
	if utf8.RuneCountInString(c.Display.EmptyGlyph) > 1 {
		return fmt.Errorf("display.empty_glyph %q must be at most one character: %w", c.Display.EmptyGlyph, ErrInvalid)
	}
	if _, ok := core.ParseColor(c.Theme.Cursor); !ok {
		return fmt.Errorf("theme.cursor: unknown colour %q: %w", c.Theme.Cursor, ErrInvalid)
	}
	if _, ok := core.ParseColor(c.Theme.Star); !ok {
		return fmt.Errorf("theme.star: unknown colour %q: %w", c.Theme.Star, ErrInvalid)
	}
	for _, v := range sortedKeys(c.Theme.Tiles) {
		if !tileValues[v] {
			return fmt.Errorf("theme.tiles: %d is not a tile value: %w", v, ErrInvalid)
		}
		if _, ok := core.ParseColor(c.Theme.Tiles[v]); !ok {
			return fmt.Errorf("theme.tiles[%d]: unknown colour %q: %w", v, c.Theme.Tiles[v], ErrInvalid)
		}
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("server.idle_timeout %s must not be negative: %w", c.Server.IdleTimeout, ErrInvalid)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	return nil
}

// StarRune returns the star glyph as a rune.
func (d DisplayConfig) StarRune() rune {
	r, _ := utf8.DecodeRuneInString(d.StarGlyph)
	return r
}

// EmptyRune returns the empty-cell glyph, or a space when unset.
func (d DisplayConfig) EmptyRune() rune {
	if d.EmptyGlyph == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(d.EmptyGlyph)
	return r
}

// Palette resolves the theme's colour names.
// Unknown names fall back to core.ColorDefault; Validate reports them.
type Palette struct {
	Cursor core.Color
	Star   core.Color
	Tiles  map[int]core.Color
}

// Palette resolves the theme into core colours.
func (t ThemeConfig) Palette() Palette {
	p := Palette{Tiles: make(map[int]core.Color, len(t.Tiles))}
	p.Cursor, _ = core.ParseColor(t.Cursor)
	p.Star, _ = core.ParseColor(t.Star)
	for v, name := range t.Tiles {
		c, _ := core.ParseColor(name)
		p.Tiles[v] = c
	}
	return p
}

// Tile returns the colour for a tile value.
func (p Palette) Tile(v int) core.Color {
	return p.Tiles[v]
}

// LogLevel returns the parsed log level, defaulting to info.
func (l LogConfig) LogLevel() log.Level {
	lvl, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func sortedKeys(m map[int]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
