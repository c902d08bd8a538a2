// Package config loads the application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultBaseWage is the baseline hourly wage used when the config file
// does not override it. It is deliberately a single constant for every
// employee; see DESIGN.md.
const DefaultBaseWage = 300.0

// Config is the top-level application configuration.
type Config struct {
	// DatabasePath is where the SQLite database lives.
	DatabasePath string `mapstructure:"database_path"`

	// BaseWage is the baseline hourly wage before skill premiums.
	BaseWage float64 `mapstructure:"base_wage"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Dir returns the plannex home directory, ~/.plannex.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".plannex"
	}
	return filepath.Join(home, ".plannex")
}

// Load reads ~/.plannex/config.yaml, falling back to defaults for any
// missing key. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(Dir())

	v.SetDefault("database_path", filepath.Join(Dir(), "plannex.db"))
	v.SetDefault("base_wage", DefaultBaseWage)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
