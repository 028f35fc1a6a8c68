package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

// chdir moves into an empty directory so that no stray ./.env is read.
func chdir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://127.0.0.1:5000", c.APIBaseURL)
	assert.Equal(t, "/login", c.EntryPath)
	assert.Equal(t, StoreSQLite, c.StoreBackend)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Zero(t, c.RequestTimeout)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	chdir(t)

	cfg, err := LoadConfig(nil, noEnv)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), *cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	chdir(t)

	path := writeTempJSON(t, map[string]any{
		"api_base_url":          "https://json.example",
		"store_backend":         "redis",
		"redis_addr":            "json:6379",
		"request_timeout":       "20s",
		"online_check_interval": "5s",
		"metrics_addr":          "127.0.0.1:9200",
	})
	env := envMap(map[string]string{
		EnvAPIBaseURL:     "https://env.example",
		EnvRedisPassword:  "from-env",
		EnvRedisDB:        "2",
		EnvLogLevel:       "debug",
		EnvRequestTimeout: "7s",
		EnvMetricsAddr:    "127.0.0.1:9100",
	})

	cfg, err := LoadConfig([]string{"-c", path, "-u", "https://flag.example", "-t", "9s"}, env)
	require.NoError(t, err)

	want := defaults()
	want.APIBaseURL = "https://flag.example"
	want.StoreBackend = StoreRedis
	want.RedisAddr = "json:6379"
	want.RedisPassword = "from-env"
	want.RedisDB = 2
	want.LogLevel = "debug"
	want.RequestTimeout = 9 * time.Second
	want.OnlineCheckInterval = 5 * time.Second
	want.MetricsAddr = "127.0.0.1:9200"

	assert.Empty(t, cmp.Diff(want, *cfg))
}

func TestLoadConfig_DotenvFile(t *testing.T) {
	chdir(t)
	require.NoError(t, os.WriteFile(".env", []byte("NAUTICALFLOW_STORE=memory\nNAUTICALFLOW_API_URL=https://dotenv.example\n"), 0o600))

	cfg, err := LoadConfig(nil, envMap(map[string]string{EnvAPIBaseURL: "https://real-env.example"}))
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.Equal(t, "https://real-env.example", cfg.APIBaseURL, "process env wins over the file")
}

func TestLoadConfig_ExplicitEnvFileMustExist(t *testing.T) {
	chdir(t)

	_, err := LoadConfig([]string{"-env", "missing.env"}, noEnv)
	require.ErrorContains(t, err, "read env file missing.env")
}

func TestLoadConfig_Errors(t *testing.T) {
	chdir(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "invalid json", args: []string{"-config", bad}},
		{name: "missing json", args: []string{"-c", "/does/not/exist.json"}},
		{name: "bad flag value", args: []string{"-i", "abc"}},
		{name: "bad env duration", env: map[string]string{EnvRequestTimeout: "soon"}},
		{name: "bad env redis db", env: map[string]string{EnvRedisDB: "zero"}},
		{name: "unknown backend", args: []string{"-s", "etcd"}},
		{name: "relative url", args: []string{"-u", "localhost:5000"}},
		{name: "negative timeout", args: []string{"-t=-1s"}},
		{name: "zero interval", args: []string{"-i", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.args, envMap(tt.env))
			require.Error(t, err)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected func(*Config)
	}{
		{
			name: "all flags",
			args: []string{"-u", "http://10.0.0.1:5000", "-entry", "/signin", "-s", "redis", "-redis", "r:6379", "-redis-db", "3", "-t", "15s", "-i", "10", "-l", "warn", "-m", ":9300"},
			expected: func(c *Config) {
				c.APIBaseURL = "http://10.0.0.1:5000"
				c.EntryPath = "/signin"
				c.StoreBackend = StoreRedis
				c.RedisAddr = "r:6379"
				c.RedisDB = 3
				c.RequestTimeout = 15 * time.Second
				c.OnlineCheckInterval = 10 * time.Second
				c.LogLevel = "warn"
				c.MetricsAddr = ":9300"
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "conf.json", "-db", "/var/lib/nf.db", "-x"},
			expected: func(c *Config) { c.StorePath = "/var/lib/nf.db" },
		},
		{
			name:     "interval untouched without -i",
			args:     []string{"-l", "debug"},
			expected: func(c *Config) { c.LogLevel = "debug" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaults()
			got.OnlineCheckInterval = 1500 * time.Millisecond
			want := got
			tt.expected(&want)

			require.NoError(t, parseFlags(&got, tt.args))
			assert.Empty(t, cmp.Diff(want, got))
		})
	}
}

func TestParseJSON_AbsentFieldsKeepValues(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"redis_db": 0, "log_level": "error"})

	cfg := defaults()
	cfg.RedisDB = 5
	require.NoError(t, parseJSON(&cfg, path))

	want := defaults()
	want.LogLevel = "error"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseJSON_NoPathIsNoop(t *testing.T) {
	cfg := defaults()
	require.NoError(t, parseJSON(&cfg, ""))
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_MetricsAddrFromEnv(t *testing.T) {
	chdir(t)

	cfg, err := LoadConfig(nil, envMap(map[string]string{EnvMetricsAddr: "127.0.0.1:9100"}))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9100", cfg.MetricsAddr)
	assert.Empty(t, defaults().MetricsAddr, "metrics are off by default")
}
