package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from CLINICA_* environment variables only; the process
// touches no config files.
type Config struct {
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	DateTimeLayout  string        `envconfig:"DATETIME_LAYOUT" default:"2006-01-02 15:04"`
	HistoryCacheTTL time.Duration `envconfig:"HISTORY_CACHE_TTL" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("clinica", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return &cfg, nil
}
