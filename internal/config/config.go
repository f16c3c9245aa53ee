// Package config loads runtime settings for ls-natal.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/litescript/ls-natal/internal/logging"
)

// ErrInvalidConfig is wrapped by every validation failure from Load.
var ErrInvalidConfig = errors.New("invalid config")

// Output formats for chart rendering.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all runtime configuration.
// Values are populated from .ls-natal.yaml, LSNATAL_* env vars, and CLI flags.
type Config struct {
	LogLevel        string `mapstructure:"log_level"`
	ProfilesPath    string `mapstructure:"profiles_path"`
	DefaultProfile  string `mapstructure:"default_profile"`
	Format          string `mapstructure:"format"`
	Watch           bool   `mapstructure:"watch"`
	TimeStepMinutes int    `mapstructure:"time_step_minutes"`
}

// SetDefaults registers the built-in default for every key.
func SetDefaults() {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("profiles_path", "profiles.toml")
	viper.SetDefault("default_profile", "")
	viper.SetDefault("format", FormatText)
	viper.SetDefault("watch", true)
	viper.SetDefault("time_step_minutes", 60)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalidConfig, c.Format, FormatText, FormatJSON)
	}
	if c.TimeStepMinutes <= 0 {
		return fmt.Errorf("%w: time_step_minutes must be positive, got %d", ErrInvalidConfig, c.TimeStepMinutes)
	}
	if c.ProfilesPath == "" {
		return fmt.Errorf("%w: profiles_path is empty", ErrInvalidConfig)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() logging.Level {
	lvl, _ := logging.ParseLevel(c.LogLevel)
	return lvl
}
