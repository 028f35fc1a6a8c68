package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Environment variables read by parseEnv.
const (
	EnvAPIBaseURL          = "NAUTICALFLOW_API_URL"
	EnvEntryPath           = "NAUTICALFLOW_ENTRY_PATH"
	EnvStoreBackend        = "NAUTICALFLOW_STORE"
	EnvStorePath           = "NAUTICALFLOW_STORE_PATH"
	EnvRedisAddr           = "NAUTICALFLOW_REDIS_ADDR"
	EnvRedisPassword       = "NAUTICALFLOW_REDIS_PASSWORD"
	EnvRedisDB             = "NAUTICALFLOW_REDIS_DB"
	EnvRedisPrefix         = "NAUTICALFLOW_REDIS_PREFIX"
	EnvRequestTimeout      = "NAUTICALFLOW_REQUEST_TIMEOUT"
	EnvOnlineCheckInterval = "NAUTICALFLOW_ONLINE_CHECK_INTERVAL"
	EnvLogLevel            = "NAUTICALFLOW_LOG_LEVEL"
	EnvMetricsAddr         = "NAUTICALFLOW_METRICS_ADDR"
)

// parseEnv overlays cfg with NAUTICALFLOW_* variables. Values come from
// lookupEnv first and from the dotenv file second. An explicit envFile
// must exist; the default ./.env is optional.
func parseEnv(cfg *Config, envFile string, lookupEnv func(string) (string, bool)) error {
	fileVars, err := readEnvFile(envFile)
	if err != nil {
		return err
	}

	get := func(key string) (string, bool) {
		if lookupEnv != nil {
			if v, ok := lookupEnv(key); ok {
				return v, true
			}
		}
		v, ok := fileVars[key]
		return v, ok
	}

	stringVars := map[string]*string{
		EnvAPIBaseURL:    &cfg.APIBaseURL,
		EnvEntryPath:     &cfg.EntryPath,
		EnvStoreBackend:  &cfg.StoreBackend,
		EnvStorePath:     &cfg.StorePath,
		EnvRedisAddr:     &cfg.RedisAddr,
		EnvRedisPassword: &cfg.RedisPassword,
		EnvRedisPrefix:   &cfg.RedisPrefix,
		EnvLogLevel:      &cfg.LogLevel,
		EnvMetricsAddr:   &cfg.MetricsAddr,
	}
	for key, dst := range stringVars {
		if v, ok := get(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := get(EnvRedisDB); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRedisDB, err)
		}
		cfg.RedisDB = n
	}

	durations := map[string]*time.Duration{
		EnvRequestTimeout:      &cfg.RequestTimeout,
		EnvOnlineCheckInterval: &cfg.OnlineCheckInterval,
	}
	for key, dst := range durations {
		if v, ok := get(key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	optional := path == ""
	if optional {
		path = defaultEnvFile
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vars, nil
}
