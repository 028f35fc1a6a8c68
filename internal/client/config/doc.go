// Package config loads runtime configuration for the NauticalFlow console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed NAUTICALFLOW_, optionally read from a
//     dotenv file (-env, or ./.env when present). Real environment
//     variables win over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-u string       base URL of the backend API
//	-entry string   path the console returns to on logout
//	-s string       session store: sqlite, redis or memory
//	-db string      SQLite file of the sqlite store
//	-redis string   host:port of the redis store
//	-redis-db int   redis database number
//	-t duration     request timeout (0 disables)
//	-i int          online status check interval (seconds)
//	-l string       log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "https://planner.example.com",
//	  "store_backend": "redis",
//	  "redis_addr": "10.0.0.5:6379",
//	  "request_timeout": "15s",
//	  "online_check_interval": "3s"
//	}
package config
