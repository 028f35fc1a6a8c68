package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/nauticalflow/internal/flagx"
)

// Session store backends.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds runtime settings for the console.
type Config struct {
	APIBaseURL string
	// EntryPath is where every logout sends the console.
	EntryPath string

	StoreBackend  string
	StorePath     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	// RequestTimeout of zero means requests never time out.
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
	// MetricsAddr is the host:port of the Prometheus endpoint. Empty
	// disables it.
	MetricsAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000"
	c.EntryPath = "/login"
	c.StoreBackend = StoreSQLite
	c.StorePath = "nauticalflow.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPrefix = "nauticalflow:session"
	c.RequestTimeout = 0
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "info"
}

// Validate reports the first setting the console cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api base url %q must be an absolute http(s) URL", c.APIBaseURL)
	}
	switch c.StoreBackend {
	case StoreSQLite, StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
	if c.StoreBackend == StoreSQLite && c.StorePath == "" {
		return errors.New("sqlite store needs a file path")
	}
	if c.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	if c.OnlineCheckInterval <= 0 {
		return errors.New("online check interval must be positive")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file and command-line flags. Later sources
// take precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	jsonFile, envFile := flagx.ConfigPaths(args)

	if err := parseEnv(cfg, envFile, lookupEnv); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, jsonFile); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
