package errors

import (
	"net"
	"regexp"
	"strings"
	"unicode"
)

// directionNames lists the accepted handle tags. It mirrors geom.Directions;
// geom cannot be imported here without a cycle.
var directionNames = map[string]bool{
	"top": true, "right": true, "bottom": true, "left": true,
	"topRight": true, "bottomRight": true, "bottomLeft": true, "topLeft": true,
}

// ValidateDirection checks that name is one of the eight handle tags.
// Matching is exact; "TopRight" and "top-right" are rejected.
func ValidateDirection(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDirection, "direction cannot be empty")
	}
	if !directionNames[name] {
		return New(ErrCodeInvalidDirection, "unknown direction %q", name)
	}
	return nil
}

// ValidateSelector validates a bounds selector before it is handed to the host.
//
// The validation rules are intentionally conservative:
//   - No empty selectors
//   - No control characters
//   - Maximum length of 256 characters
func ValidateSelector(selector string) error {
	if strings.TrimSpace(selector) == "" {
		return New(ErrCodeInvalidSelector, "bounds selector cannot be empty")
	}
	if len(selector) > 256 {
		return New(ErrCodeInvalidSelector, "bounds selector too long (max 256 characters)")
	}
	for _, r := range selector {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSelector, "bounds selector contains invalid control characters")
		}
	}
	return nil
}

// storeKeyRegex matches keys accepted by size stores.
var storeKeyRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:/-]*$`)

// ValidateKey validates an element key used to persist sizes.
// It rejects keys that could escape a file store directory or collide with
// redis namespace separators in surprising ways.
func ValidateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "key cannot be empty")
	}

	const maxKeyLength = 200
	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidKey, "key too long (max %d characters)", maxKeyLength)
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(key, pattern) {
			return New(ErrCodeInvalidKey, "key contains invalid characters: %q", pattern)
		}
	}

	if !storeKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidKey, "invalid key: %q", key)
	}
	return nil
}

// ValidateRedisAddr validates a host:port redis address.
func ValidateRedisAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidConfig, "redis address cannot be empty")
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Wrap(ErrCodeInvalidConfig, err, "invalid redis address %q", addr)
	}
	if port == "" {
		return New(ErrCodeInvalidConfig, "redis address %q has no port", addr)
	}
	return nil
}
