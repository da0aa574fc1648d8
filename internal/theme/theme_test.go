package theme

import (
	"context"
	"errors"
	"testing"

	apperrors "mfinvestor/internal/errors"
	"mfinvestor/internal/store"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"light", Light, true},
		{" DARK ", Dark, true},
		{"sepia", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseMode(%q) = %q, %v", tt.in, got, err)
		}
		if !tt.ok && !errors.Is(err, apperrors.ErrInvalidTheme) {
			t.Errorf("ParseMode(%q) error = %v", tt.in, err)
		}
	}
}

func TestLoadSave(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	defer kv.Close()

	mode, err := Load(ctx, kv, Light)
	if err != nil || mode != Light {
		t.Fatalf("Load(empty) = %q, %v", mode, err)
	}

	if err := Save(ctx, kv, Dark); err != nil {
		t.Fatalf("Save: %v", err)
	}
	mode, err = Load(ctx, kv, Light)
	if err != nil || !mode.Dark() {
		t.Fatalf("Load = %q, %v", mode, err)
	}

	if err := Save(ctx, kv, Mode("sepia")); !errors.Is(err, apperrors.ErrInvalidTheme) {
		t.Errorf("Save(sepia) error = %v", err)
	}
}

func TestLoadRejectsCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	defer kv.Close()

	if err := kv.Set(ctx, Key, "neon"); err != nil {
		t.Fatal(err)
	}
	mode, err := Load(ctx, kv, Dark)
	if !errors.Is(err, apperrors.ErrInvalidTheme) {
		t.Errorf("Load error = %v", err)
	}
	if mode != Dark {
		t.Errorf("Load(corrupt) mode = %q, want fallback %q", mode, Dark)
	}
}

func TestLoadPropagatesStorageErrors(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	kv.Close()

	mode, err := Load(ctx, kv, Dark)
	if !errors.Is(err, apperrors.ErrStorageClosed) {
		t.Errorf("Load error = %v", err)
	}
	if mode != Dark {
		t.Errorf("fallback not returned on error: %q", mode)
	}
}
