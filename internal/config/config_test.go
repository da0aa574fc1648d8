package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "mfinvestor/internal/errors"
	"mfinvestor/internal/status"
)

func TestLoadCreatesTemplate(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("template not written: %v", err)
	}
	if cfg.Display.CurrencySymbol != "₹" {
		t.Errorf("currency symbol = %q", cfg.Display.CurrencySymbol)
	}
	if cfg.Storage.Target != TargetWeb {
		t.Errorf("storage target = %q", cfg.Storage.Target)
	}
	if cfg.Storage.Path != filepath.Join(dir, "mfinvestor.db") {
		t.Errorf("storage path = %q", cfg.Storage.Path)
	}
	if cfg.IsDarkTheme() {
		t.Error("default theme should be light")
	}

	// second load reads the template back
	if _, err := Load(dir); err != nil {
		t.Fatalf("reload: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[display]
currency_symbol = "Rs."
theme = "dark"

[storage]
target = "memory"

[palette.dark]
yellow = "#FFEE58"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.CurrencySymbol != "Rs." || !cfg.IsDarkTheme() {
		t.Errorf("display = %+v", cfg.Display)
	}
	if cfg.Storage.Target != TargetMemory {
		t.Errorf("target = %q", cfg.Storage.Target)
	}

	style := cfg.Classifier().OrderStyle("RECEIVED", true)
	if style.BackgroundColor != "#FFEE58" {
		t.Errorf("palette override not applied: %+v", style)
	}
	if cfg.Classifier().Palette(true).Red != status.DarkPalette.Red {
		t.Error("unset colors should keep the built-in palette")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MFX_STORAGE_TARGET", TargetNative)
	t.Setenv("MFX_STORAGE_PASSPHRASE", "s3cret")
	t.Setenv("MFX_THEME", "dark")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Target != TargetNative || cfg.Storage.Passphrase != "s3cret" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if !cfg.IsDarkTheme() {
		t.Error("theme override not applied")
	}
}

func TestLoadReturnsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MFX_STORAGE_TARGET", TargetNative)
	t.Setenv("MFX_STORAGE_PASSPHRASE", "")

	cfg, err := Load(dir)
	if !errors.Is(err, apperrors.ErrConfigInvalid) {
		t.Errorf("Load error = %v, want ErrConfigInvalid", err)
	}
	if cfg == nil {
		t.Fatal("invalid config not returned")
	}
	if cfg.Display.CurrencySymbol != "₹" || cfg.Storage.Target != TargetNative {
		t.Errorf("config = %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"bad theme", func(c *Config) { c.Display.Theme = "sepia" }, false},
		{"bad target", func(c *Config) { c.Storage.Target = "floppy" }, false},
		{"native without passphrase", func(c *Config) { c.Storage.Target = TargetNative }, false},
		{"native with passphrase", func(c *Config) {
			c.Storage.Target = TargetNative
			c.Storage.Passphrase = "x"
		}, true},
		{"web without path", func(c *Config) { c.Storage.Path = "" }, false},
		{"memory without path", func(c *Config) {
			c.Storage.Target = TargetMemory
			c.Storage.Path = ""
		}, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(t.TempDir())
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, apperrors.ErrConfigInvalid) {
				t.Errorf("expected ErrConfigInvalid, got %v", err)
			}
		})
	}
}
