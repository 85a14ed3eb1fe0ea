// Package config assembles the client configuration from defaults,
// environment variables and command-line flags, later sources winning.
package config

import "time"

// Config holds runtime settings for the game client.
//
// Fields:
//   - APIBaseURL: base URL of the game service HTTP API.
//   - WSBaseURL: base URL of the score event channel (ws:// or wss://).
//   - SnapshotDSN: SQLite DSN for the local session snapshot database.
//   - LeaderboardInterval: period of the leaderboard poll.
type Config struct {
	APIBaseURL          string        `env:"API_BASE_URL"`
	WSBaseURL           string        `env:"WS_BASE_URL"`
	SnapshotDSN         string        `env:"SNAPSHOT_DB"`
	LeaderboardInterval time.Duration `env:"LEADERBOARD_INTERVAL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.WSBaseURL = "ws://localhost:8080"
	c.SnapshotDSN = "session.db"
	c.LeaderboardInterval = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file, if present) and from
// command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
