package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig is a DTO for environment parsing. Fields left empty in the
// environment must not clobber earlier layers, hence the separate struct
// and the copy-if-set step.
type envConfig struct {
	APIBaseURL     string        `env:"GALERE_API_URL"`
	RequestTimeout time.Duration `env:"GALERE_TIMEOUT"`
	DatabasePath   string        `env:"GALERE_DB_PATH"`
	LogLevel       string        `env:"GALERE_LOG_LEVEL"`
}

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first when present; a missing
// file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
