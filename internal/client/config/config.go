// Package config loads the DashApp CLI client configuration from defaults,
// an optional JSON file, and command-line flags, in that order of
// precedence.
package config

import "time"

// Config holds runtime settings for the DashApp CLI.
//
// Fields:
//   - ServerEndpointURL: base URL of the backend REST API, including the
//     /api/v1 prefix.
//   - RequestTimeout: per-request timeout for API calls.
//   - DataFile: path of the local SQLite file holding the saved access
//     token and UI preferences.
type Config struct {
	ServerEndpointURL string
	RequestTimeout    time.Duration
	DataFile          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://127.0.0.1:8000/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.DataFile = "dashapp.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
