// Package config provides configuration management for the investor toolkit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	apperrors "mfinvestor/internal/errors"
	"mfinvestor/internal/status"
)

// Storage targets. Each runtime target selects a different key/value backend.
const (
	TargetNative = "native" // encrypted SQLite, the secure-storage equivalent
	TargetWeb    = "web"    // plain SQLite, the browser-storage equivalent
	TargetMemory = "memory" // in-process cache, nothing persisted
)

// Config holds all application configuration.
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Palette PaletteConfig `mapstructure:"palette"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DisplayConfig holds formatting preferences.
type DisplayConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Theme          string `mapstructure:"theme"` // light, dark
}

// PaletteConfig overrides the badge colors. Empty colors keep the built-ins.
type PaletteConfig struct {
	Light status.Palette `mapstructure:"light"`
	Dark  status.Palette `mapstructure:"dark"`
}

// StorageConfig selects and configures the key/value backend.
type StorageConfig struct {
	Target     string `mapstructure:"target"`
	Path       string `mapstructure:"path"`
	Passphrase string `mapstructure:"-"` // env only
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/mfinvestor"
	}
	return filepath.Join(home, ".config", "mfinvestor")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory. A missing
// config.toml is created from the template and the defaults are used.
// A config that fails validation is returned together with the error, so
// commands that do not depend on the invalid setting can still run.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.toml: %w", err)
		}
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("creating config.toml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default(configDir string) *Config {
	v := viper.New()
	setDefaults(v, configDir)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("display.currency_symbol", "₹")
	v.SetDefault("display.theme", "light")
	v.SetDefault("storage.target", TargetWeb)
	v.SetDefault("storage.path", filepath.Join(configDir, "mfinvestor.db"))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", false)
	v.SetDefault("logging.file_path", filepath.Join(configDir, "logs", "mfx.log"))
	v.SetDefault("logging.max_size", 50)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age", 30)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MFX_STORAGE_TARGET"); v != "" {
		cfg.Storage.Target = v
	}
	if v := os.Getenv("MFX_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("MFX_STORAGE_PASSPHRASE"); v != "" {
		cfg.Storage.Passphrase = v
	}
	if v := os.Getenv("MFX_THEME"); v != "" {
		cfg.Display.Theme = v
	}
	if v := os.Getenv("MFX_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Display.Theme) {
	case "", "light", "dark":
	default:
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "invalid theme: %s (must be 'light' or 'dark')", c.Display.Theme)
	}

	switch c.Storage.Target {
	case TargetNative:
		if c.Storage.Passphrase == "" {
			return apperrors.Wrap(apperrors.ErrConfigInvalid, "native storage requires MFX_STORAGE_PASSPHRASE")
		}
		if c.Storage.Path == "" {
			return apperrors.Wrap(apperrors.ErrConfigInvalid, "storage.path must be set")
		}
	case TargetWeb:
		if c.Storage.Path == "" {
			return apperrors.Wrap(apperrors.ErrConfigInvalid, "storage.path must be set")
		}
	case TargetMemory:
	default:
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "invalid storage target: %s (must be 'native', 'web' or 'memory')", c.Storage.Target)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "invalid log level: %s", c.Logging.Level)
	}

	return nil
}

// Classifier builds a status classifier from the configured palettes.
func (c *Config) Classifier() *status.Classifier {
	return status.NewClassifier(c.Palette.Light, c.Palette.Dark)
}

// IsDarkTheme reports whether the configured default theme is dark.
func (c *Config) IsDarkTheme() bool {
	return strings.EqualFold(c.Display.Theme, "dark")
}
