package security

import "strings"

// sensitiveKeys lists store keys whose values must not reach the logs.
var sensitiveKeys = []string{
	"pan",
	"aadhaar",
	"account",
	"ifsc",
	"mobile",
	"email",
	"token",
	"secret",
	"password",
	"passphrase",
}

// IsSensitiveKey reports whether key names personal or secret data.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}

// MaskCredential masks a value for logging, keeping a short prefix and suffix.
func MaskCredential(value string) string {
	if len(value) == 0 {
		return ""
	}
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	if len(value) <= 8 {
		return value[:2] + strings.Repeat("*", len(value)-2)
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}

// LogValue returns value as it may appear in logs for key.
func LogValue(key, value string) string {
	if IsSensitiveKey(key) {
		return MaskCredential(value)
	}
	return value
}
