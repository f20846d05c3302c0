package errors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxQueryLen bounds search text sent to a registry.
const maxQueryLen = 256

// ValidateQuery validates free-text search input.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only queries
//   - No control characters
//   - Maximum length of 256 characters
func ValidateQuery(q string) error {
	if strings.TrimSpace(q) == "" {
		return New(ErrCodeInvalidQuery, "search query cannot be empty")
	}

	if utf8.RuneCountInString(q) > maxQueryLen {
		return New(ErrCodeInvalidQuery, "search query too long (max %d characters)", maxQueryLen)
	}

	for _, r := range q {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidQuery, "search query contains invalid control characters")
		}
	}

	return nil
}

// entityIDRegex matches registry identifiers: letters, digits, and dashes.
var entityIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{0,63}$`)

// ValidateEntityID validates a registry identifier such as a DOS ID.
// Identifiers end up as the last path segment of a detail URL, so anything
// that could alter the path is rejected.
func ValidateEntityID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidEntityID, "entity id cannot be empty")
	}

	if !entityIDRegex.MatchString(id) {
		return New(ErrCodeInvalidEntityID, "invalid entity id: %q", id)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
