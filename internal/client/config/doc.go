// Package config loads runtime configuration for the GalèreBuddy CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file loaded first
//     (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the GalèreBuddy API
//	-t int      request timeout (seconds)
//	-d string   path to the local sqlite database
//
// Environment variables
//
//	GALERE_API_URL, GALERE_TIMEOUT (Go duration), GALERE_DB_PATH,
//	GALERE_LOG_LEVEL
//
// # JSON schema
//
// The JSON loader uses timex.Duration for durations, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3001",
//	  "request_timeout": "30s",
//	  "database_path": "galere.db",
//	  "log_level": "info"
//	}
package config
