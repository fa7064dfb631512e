package config

import "time"

// Config holds runtime settings for the souk client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API.
//   - DatabaseDSN: path of the local sqlite database holding the session.
//   - Language: BCP 47 language for user-facing messages.
//   - SplashMinDuration: how long the splash stays on screen at minimum
//     after startup checks complete.
type Config struct {
	ServerBaseURL     string
	DatabaseDSN       string
	Language          string
	SplashMinDuration time.Duration
}

// LoadDefaults populates c with the compiled-in defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://192.168.1.110:8080"
	c.DatabaseDSN = "souk.db"
	c.Language = "ar"
	c.SplashMinDuration = 2 * time.Second
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
