package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxQueryLength caps the number of runes accepted in a search query.
const MaxQueryLength = 256

// ValidateQuery checks a search query before it is sent to the index.
//
// The rules are conservative:
//   - No empty or whitespace-only queries
//   - No control characters (tabs, newlines, null bytes)
//   - Maximum length of [MaxQueryLength] runes
//
// Callers are expected to trim the query first; surrounding whitespace is not
// rejected here so that the check can run on raw input too.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return New(ErrCodeInvalidInput, "search query cannot be empty")
	}

	if utf8.RuneCountInString(query) > MaxQueryLength {
		return New(ErrCodeInvalidInput, "search query too long (max %d characters)", MaxQueryLength)
	}

	for _, r := range query {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "search query contains control characters")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
