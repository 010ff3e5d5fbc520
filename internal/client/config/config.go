package config

import "time"

// Config holds runtime settings for the GalèreBuddy CLI.
//
// Fields:
//   - APIBaseURL: base URL of the GalèreBuddy HTTP API.
//   - RequestTimeout: per-request timeout applied by the API client.
//   - DatabasePath: sqlite file holding the persisted session slots.
//   - LogLevel: one of debug, info, warn, error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3001"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "galere.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if selected) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
