package config

import (
	"flag"
	"os"
	"time"

	"github.com/Rajatbisht12/EmiterA/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the game service API
//	-w string   base URL of the score event channel
//	-d string   SQLite DSN of the snapshot database
//	-i int      leaderboard poll interval in seconds
//
// Only the flags listed here are parsed, via flagx.FilterArgs, so other
// components can define their own flags without interference.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the game service API")
	fs.StringVar(&cfg.WSBaseURL, "w", cfg.WSBaseURL, "base URL of the score event channel")
	fs.StringVar(&cfg.SnapshotDSN, "d", cfg.SnapshotDSN, "snapshot database DSN")
	interval := fs.Int("i", int(cfg.LeaderboardInterval.Seconds()), "leaderboard poll interval (seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.LeaderboardInterval = time.Duration(*interval) * time.Second
}
