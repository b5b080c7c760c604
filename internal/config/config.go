// Package config provides configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for a drop-zone controller instance.
// It is the typed stand-in for the attribute values a host binding
// framework would read off the bound element.
type Config struct {
	// Zone behavior
	ActiveClass  string         `mapstructure:"active_class"`
	InitialMode  string         `mapstructure:"initial_mode"`
	Delay        time.Duration  `mapstructure:"delay"`
	SwitchKey    string         `mapstructure:"switch_key"`
	SwitchValues map[string]any `mapstructure:"switch_values"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ActiveClass: "",
		InitialMode: "",
		Delay:       0,
		SwitchKey:   "active",
		LogLevel:    "info",
		LogFormat:   "json",
	}
}

// LoadConfig loads configuration from file, environment, and defaults.
// Priority: Environment > Config file > Defaults
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("active_class", defaults.ActiveClass)
	v.SetDefault("initial_mode", defaults.InitialMode)
	v.SetDefault("delay", defaults.Delay)
	v.SetDefault("switch_key", defaults.SwitchKey)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)

	// Environment variables with WZONE_ prefix
	v.SetEnvPrefix("WZONE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load from config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// Ignore if the default config.yaml simply doesn't exist — use built-in defaults.
			// Only fail if the user explicitly provided a path that can't be read.
			isNotFound := errors.Is(err, os.ErrNotExist)
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !isNotFound {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// ActiveClasses returns the configured active class split into individual
// class tokens. An empty configuration yields no tokens.
func (c *Config) ActiveClasses() []string {
	return strings.Fields(c.ActiveClass)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	// Validate delay
	if c.Delay < 0 {
		return fmt.Errorf("delay must be non-negative, got %s", c.Delay)
	}

	// Validate initial mode token
	if c.InitialMode != "" && c.InitialMode != "active" {
		return fmt.Errorf("invalid initial mode: %q (must be empty or \"active\")", c.InitialMode)
	}

	// Validate switch key: a bare negation marker has nothing to look up
	if strings.TrimPrefix(c.SwitchKey, "!") == "" {
		return fmt.Errorf("switch key must not be empty")
	}

	return nil
}
