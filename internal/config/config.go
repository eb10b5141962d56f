// Package config loads runtime configuration for bloomwatch from
// .bloomwatch.yaml, BLOOMWATCH_* environment variables and CLI flags,
// in that order of increasing precedence.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a bloomwatch session.
type Config struct {
	DBPath        string `mapstructure:"db_path"`
	RegistryPath  string `mapstructure:"registry_path"`
	Garden        string `mapstructure:"garden"`
	Mode          string `mapstructure:"mode"`
	IntervalMs    int    `mapstructure:"interval_ms"`
	WatchRegistry bool   `mapstructure:"watch_registry"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("db_path", "observations.db")
	viper.SetDefault("registry_path", "gardens.toml")
	viper.SetDefault("garden", "")
	viper.SetDefault("mode", "month")
	viper.SetDefault("interval_ms", 1000)
	viper.SetDefault("watch_registry", true)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
