// Package security provides input validation and masking of sensitive values.
package security

import (
	"regexp"
	"strings"

	apperrors "mfinvestor/internal/errors"
)

// MaxKeyLength bounds store keys.
const MaxKeyLength = 128

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.:-]+$`)

// ValidateKey checks a client-supplied store key.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return apperrors.NewValidationError("key", key, "key cannot be empty")
	}
	if len(key) > MaxKeyLength {
		return apperrors.NewValidationError("key", key[:32]+"...", "key too long (max 128 characters)")
	}
	if !keyPattern.MatchString(key) {
		return apperrors.NewValidationError("key", key, "key may only contain letters, digits, '_', '.', ':' and '-'")
	}
	return nil
}

// SanitizeText removes control characters from free-form input.
func SanitizeText(text string) string {
	var result strings.Builder
	for _, r := range text {
		if r >= 32 && r != 127 {
			result.WriteRune(r)
		}
	}
	return result.String()
}
