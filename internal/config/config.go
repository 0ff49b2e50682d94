package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings, sourced from LARDER_* environment
// variables (a .env file is loaded by the entry point before this runs).
type Config struct {
	Port             string `envconfig:"LARDER_PORT" default:"8080"`
	DBPath           string `envconfig:"LARDER_DB_PATH" default:"larder.db"`
	LogLevel         string `envconfig:"LARDER_LOG_LEVEL" default:"info"`
	BackupPassphrase string `envconfig:"LARDER_BACKUP_PASSPHRASE"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
