// Package config handles pathfind configuration loading and management.
package config

import "time"

// Config holds all pathfind settings.
type Config struct {
	Search  SearchConfig  `yaml:"search" mapstructure:"search"`
	Render  RenderConfig  `yaml:"render" mapstructure:"render"`
	Watch   WatchConfig   `yaml:"watch" mapstructure:"watch"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// SearchConfig holds search execution settings.
type SearchConfig struct {
	Workers int  `yaml:"workers" mapstructure:"workers"` // Concurrent searches in batch mode
	Verify  bool `yaml:"verify" mapstructure:"verify"`   // Re-check every returned path
}

// RenderConfig holds result display settings.
type RenderConfig struct {
	Color     bool   `yaml:"color" mapstructure:"color"`
	PathGlyph string `yaml:"path_glyph" mapstructure:"path_glyph"`
	ShowStats bool   `yaml:"show_stats" mapstructure:"show_stats"`
}

// WatchConfig holds map file watch settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// MarshalYAML writes Debounce as a duration string such as "200ms".
func (w WatchConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Debounce string `yaml:"debounce"`
	}{w.Debounce.String()}, nil
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" mapstructure:"level"`
	LogFile string `yaml:"log_file" mapstructure:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Workers: 4,
			Verify:  false,
		},
		Render: RenderConfig{
			Color:     true,
			PathGlyph: "*",
			ShowStats: true,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
