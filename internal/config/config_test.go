package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/double128/internal/core"
)

// isolate points the user and local config locations at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	if got := embeddedDefault(); !reflect.DeepEqual(got, Default()) {
		t.Errorf("embedded default YAML and Default() differ:\n%+v\n%+v", got, Default())
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
display:
  star_glyph: "★"
theme:
  tiles:
    2: red
server:
  idle_timeout: 5m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.StarRune() != '★' {
		t.Errorf("StarRune() = %q, want ★", cfg.Display.StarRune())
	}
	if cfg.Theme.Tiles[2] != "red" {
		t.Errorf("Tiles[2] = %q, want red", cfg.Theme.Tiles[2])
	}
	if cfg.Theme.Tiles[64] != "bright_magenta" {
		t.Errorf("Tiles[64] = %q, want default bright_magenta", cfg.Theme.Tiles[64])
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", cfg.Server.IdleTimeout)
	}
	if cfg.Display.Title != "Double to 128" {
		t.Errorf("Title = %q, want default", cfg.Display.Title)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "display: [unterminated")
	if _, err := Load(broken); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "theme:\n  tiles:\n    3: red\n")
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, want ErrInvalid", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, localConfigPath), "log:\n  level: warn\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("local config: Log.Level = %q, want warn", cfg.Log.Level)
	}

	writeFile(t, filepath.Join(home, ".double128", "config.yaml"), "log:\n  level: debug\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("user config should win: Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadSkipsMalformedUserConfig(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(home, ".double128", "config.yaml"), ":::")
	writeFile(t, filepath.Join(work, localConfigPath), "display:\n  title: Local\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.Title != "Local" {
		t.Errorf("Title = %q, want Local", cfg.Display.Title)
	}
	if cfg.Theme.Tiles[2] != "white" {
		t.Errorf("failed layer leaked into defaults: Tiles[2] = %q", cfg.Theme.Tiles[2])
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty star", func(c *Config) { c.Display.StarGlyph = "" }},
		{"long star", func(c *Config) { c.Display.StarGlyph = "**" }},
		{"long empty glyph", func(c *Config) { c.Display.EmptyGlyph = ".." }},
		{"bad cursor colour", func(c *Config) { c.Theme.Cursor = "mauve" }},
		{"bad star colour", func(c *Config) { c.Theme.Star = "" }},
		{"bad tile value", func(c *Config) { c.Theme.Tiles[256] = "red" }},
		{"bad tile colour", func(c *Config) { c.Theme.Tiles[8] = "plaid" }},
		{"negative idle", func(c *Config) { c.Server.IdleTimeout = -time.Second }},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("display:\n  empty_glyph: \"\"\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Display.EmptyRune() != ' ' {
		t.Errorf("EmptyRune() = %q, want space", cfg.Display.EmptyRune())
	}
}

func TestPalette(t *testing.T) {
	p := Default().Theme.Palette()

	if p.Star != core.ColorBrightYellow {
		t.Errorf("Star = %v, want bright yellow", p.Star)
	}
	if p.Tile(32) != core.ColorOrange {
		t.Errorf("Tile(32) = %v, want orange", p.Tile(32))
	}
	if p.Tile(0) != core.ColorDefault {
		t.Errorf("Tile(0) = %v, want default", p.Tile(0))
	}
}

func TestLogLevel(t *testing.T) {
	if got := (LogConfig{Level: "debug"}).LogLevel(); got != log.DebugLevel {
		t.Errorf("LogLevel(debug) = %v", got)
	}
	if got := (LogConfig{Level: "nope"}).LogLevel(); got != log.InfoLevel {
		t.Errorf("LogLevel(nope) = %v, want info", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.double128/host_key")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".double128", "host_key"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/etc/key"); got != "/etc/key" {
		t.Errorf("ExpandHome(/etc/key) = %q, want unchanged", got)
	}
}
