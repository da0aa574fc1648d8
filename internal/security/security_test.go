package security

import (
	"errors"
	"strings"
	"testing"

	apperrors "mfinvestor/internal/errors"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"theme", true},
		{"profile.pan", true},
		{"sip:2024-01", true},
		{"", false},
		{"   ", false},
		{"drop table", false},
		{"a;b", false},
		{strings.Repeat("k", MaxKeyLength), true},
		{strings.Repeat("k", MaxKeyLength+1), false},
	}

	for _, tt := range tests {
		err := ValidateKey(tt.key)
		if tt.valid && err != nil {
			t.Errorf("ValidateKey(%q) = %v, want nil", tt.key, err)
		}
		if !tt.valid && !errors.Is(err, apperrors.ErrInputValidation) {
			t.Errorf("ValidateKey(%q) = %v, want validation error", tt.key, err)
		}
	}
}

func TestSanitizeText(t *testing.T) {
	if got := SanitizeText("Jane\x00 Doe\n"); got != "Jane Doe" {
		t.Errorf("SanitizeText = %q", got)
	}
}

func TestMaskCredential(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcdef", "ab****"},
		{"ABCDE1234F", "ABCD**234F"},
	}

	for _, tt := range tests {
		if got := MaskCredential(tt.in); got != tt.want {
			t.Errorf("MaskCredential(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLogValue(t *testing.T) {
	if got := LogValue("profile.PAN", "ABCDE1234F"); got != "ABCD**234F" {
		t.Errorf("sensitive key not masked: %q", got)
	}
	if got := LogValue("theme", "dark"); got != "dark" {
		t.Errorf("plain key masked: %q", got)
	}
}
