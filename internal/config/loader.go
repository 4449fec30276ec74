package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/double128.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.double128/config.yaml -> ./configs/double128.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or malformed.
func Load(customPath string) (Config, error) {
	cfg := embeddedDefault()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		layered := cfg
		layered.Theme.Tiles = copyTiles(cfg.Theme.Tiles)
		if err := yaml.Unmarshal(data, &layered); err != nil {
			continue
		}
		return validated(layered, path)
	}

	return cfg, nil
}

// Parse decodes a YAML document layered over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	return validated(cfg, "<input>")
}

func validated(cfg Config, source string) (Config, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// embeddedDefault decodes the embedded YAML, falling back to Default().
func embeddedDefault() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".double128", "config.yaml")
}

func copyTiles(m map[int]string) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
