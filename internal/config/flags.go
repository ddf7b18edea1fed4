package config

// Overrides are command-line settings applied on top of the loaded config.
// Zero values leave the config untouched.
type Overrides struct {
	Debug   bool
	NoColor bool
	Verify  bool
	Workers int
	LogFile string
}

// Apply applies the overrides to cfg.
func (o Overrides) Apply(cfg *Config) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.NoColor {
		cfg.Render.Color = false
	}
	if o.Verify {
		cfg.Search.Verify = true
	}
	if o.Workers > 0 {
		cfg.Search.Workers = o.Workers
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
}
