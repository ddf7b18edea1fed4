package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PATHFIND_SEARCH_WORKERS.
const EnvPrefix = "PATHFIND"

// ErrInvalidConfig is returned when loaded values fail validation.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < environment < overrides.
// An empty path searches the standard locations; a missing file there is not an error.
func Load(path string, o Overrides) (*Config, error) {
	v := newViper()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	o.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newViper returns a viper instance seeded with Default values and
// bound to the environment.
func newViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("search.workers", d.Search.Workers)
	v.SetDefault("search.verify", d.Search.Verify)
	v.SetDefault("render.color", d.Render.Color)
	v.SetDefault("render.path_glyph", d.Render.PathGlyph)
	v.SetDefault("render.show_stats", d.Render.ShowStats)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.log_file", d.Logging.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Search.Workers < 1 {
		return fmt.Errorf("%w: search.workers must be at least 1, got %d", ErrInvalidConfig, c.Search.Workers)
	}
	if len([]rune(c.Render.PathGlyph)) != 1 {
		return fmt.Errorf("%w: render.path_glyph must be a single character, got %q", ErrInvalidConfig, c.Render.PathGlyph)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("%w: watch.debounce must not be negative", ErrInvalidConfig)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./pathfind.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Gridpath")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Gridpath")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "gridpath")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gridpath")
	}
}
