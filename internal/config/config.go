// Package config provides configuration utilities for the application.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/RackSavant/celebrityRecs/internal/classify"
)

// LoadClassifierConfig loads the classification backend configuration
// from Viper. The backend base address is the one externally supplied
// value the core depends on; everything else has defaults.
func LoadClassifierConfig() classify.Config {
	cfg := classify.DefaultConfig()

	if v := viper.GetString("backend.url"); v != "" {
		cfg.BaseURL = v
	}
	if v := viper.GetDuration("backend.timeout"); v > 0 {
		cfg.Timeout = v
	}

	return cfg
}

// SetDefaults registers configuration defaults with Viper.
func SetDefaults() {
	viper.SetDefault("backend.url", classify.DefaultConfig().BaseURL)
	viper.SetDefault("backend.timeout", 30*time.Second)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}
