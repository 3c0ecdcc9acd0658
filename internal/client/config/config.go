package config

import "time"

// Config holds runtime settings for the orderdesk client.
//
// Fields:
//   - BaseURL: base URL of the order-management REST backend.
//   - RequestTimeout: fixed per-request timeout applied by the API client.
//   - SessionDBPath: path of the local sqlite file holding the persisted session.
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SessionDBPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "orderdesk.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
