// Package config provides configuration management for spinrect with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	appName   = "spinrect"
	envPrefix = "SPINRECT"
)

// Config represents the complete configuration for spinrect.
type Config struct {
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Canvas   CanvasConfig   `mapstructure:"canvas" yaml:"canvas"`
	Rotation RotationConfig `mapstructure:"rotation" yaml:"rotation"`
	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Export   ExportConfig   `mapstructure:"export" yaml:"export"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`

	// path of the file the configuration was read from, empty when none
	source string
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width     int    `mapstructure:"width" yaml:"width"`
	Height    int    `mapstructure:"height" yaml:"height"`
	Title     string `mapstructure:"title" yaml:"title"`
	Resizable bool   `mapstructure:"resizable" yaml:"resizable"`
}

type CanvasConfig struct {
	Background string `mapstructure:"background" yaml:"background"`
}

// RotationConfig controls the spin animation that precedes removal.
type RotationConfig struct {
	Duration time.Duration `mapstructure:"duration" yaml:"duration"`
	Degrees  float64       `mapstructure:"degrees" yaml:"degrees"`
}

// InputConfig holds pointer thresholds.
type InputConfig struct {
	DoubleClickInterval time.Duration `mapstructure:"double_click_interval" yaml:"double_click_interval"`
	DoubleClickDistance int           `mapstructure:"double_click_distance" yaml:"double_click_distance"`
}

// ExportConfig controls PNG snapshots.
type ExportConfig struct {
	Dir       string `mapstructure:"dir" yaml:"dir"`
	UseDialog bool   `mapstructure:"use_dialog" yaml:"use_dialog"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Source returns the file the configuration was loaded from, if any.
func (c *Config) Source() string {
	return c.source
}

// Load reads configuration from path, or from the default search locations
// when path is empty, applies SPINRECT_* environment overrides and validates
// the result. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(appName)
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.source = v.ConfigFileUsed()

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configDir returns $XDG_CONFIG_HOME/spinrect, falling back to ~/.config/spinrect.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}
