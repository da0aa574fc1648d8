// Package theme persists the light/dark preference that drives badge colors.
package theme

import (
	"context"
	"strings"

	apperrors "mfinvestor/internal/errors"
	"mfinvestor/internal/store"
)

// Key is the storage key holding the preferred mode.
const Key = "theme"

// Mode is the UI color mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", apperrors.Wrapf(apperrors.ErrInvalidTheme, "%q", s)
}

// Dark reports whether m is the dark mode.
func (m Mode) Dark() bool {
	return m == Dark
}

// Load returns the stored mode, or fallback when none is stored. On any
// error fallback is returned with it.
func Load(ctx context.Context, kv store.KeyValueStore, fallback Mode) (Mode, error) {
	v, err := kv.Get(ctx, Key)
	if apperrors.Is(err, apperrors.ErrKeyNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, apperrors.Wrap(err, "loading theme")
	}
	m, err := ParseMode(v)
	if err != nil {
		return fallback, err
	}
	return m, nil
}

// Save stores mode.
func Save(ctx context.Context, kv store.KeyValueStore, mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	return apperrors.Wrap(kv.Set(ctx, Key, string(mode)), "saving theme")
}
