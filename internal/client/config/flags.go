package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/nauticalflow/internal/flagx"
)

var ownFlags = []string{"-u", "-entry", "-s", "-db", "-redis", "-redis-db", "-t", "-i", "-l", "-m"}

// parseFlags populates Config fields from args. Flags it does not know
// (such as -c) are filtered out with flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, ownFlags)

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.EntryPath, "entry", cfg.EntryPath, "path the console returns to on logout")
	fs.StringVar(&cfg.StoreBackend, "s", cfg.StoreBackend, "session store: sqlite, redis or memory")
	fs.StringVar(&cfg.StorePath, "db", cfg.StorePath, "SQLite file of the session store")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "host:port of the redis session store")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "redis database number")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout, 0 disables")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval/time.Second), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "host:port to serve Prometheus metrics on, empty disables")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
	return nil
}
