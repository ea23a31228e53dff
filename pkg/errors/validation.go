package errors

import (
	"strconv"
	"unicode"
)

// maxQueryLength bounds search text; upstream name fields are short and
// anything longer is a caller bug, not a plausible food name.
const maxQueryLength = 128

// ValidateSearchQuery validates free-text search input before it is embedded
// in a query document.
//
// The rules are intentionally conservative:
//   - No empty or whitespace-only text
//   - No control characters
//   - Maximum length of 128 characters
//
// Matching semantics (substring, case handling) are the upstream's business;
// this only rejects input that could never be a food name.
func ValidateSearchQuery(text string) error {
	if text == "" {
		return New(ErrCodeInvalidInput, "search text cannot be empty")
	}

	if len(text) > maxQueryLength {
		return New(ErrCodeInvalidInput, "search text too long (max %d characters)", maxQueryLength)
	}

	blank := true
	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "search text contains control characters")
		}
		if !unicode.IsSpace(r) {
			blank = false
		}
	}
	if blank {
		return New(ErrCodeInvalidInput, "search text cannot be blank")
	}

	return nil
}

// ValidateFoodID parses a food identifier argument. Upstream ids are
// positive decimal integers.
func ValidateFoodID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, New(ErrCodeInvalidFoodID, "food id must be a number, got %q", arg)
	}
	if id <= 0 {
		return 0, New(ErrCodeInvalidFoodID, "food id must be positive, got %d", id)
	}
	return id, nil
}
