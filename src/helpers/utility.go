package helpers

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Add this function to generate UUIDs
func GenerateUUID() string {
	return uuid.New().String()
}

// Trim strips leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// IsAlphanumeric reports whether s is non-empty and contains only
// letters and digits.
func IsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsLettersOnly reports whether s is non-empty and contains only
// letters and spaces.
func IsLettersOnly(s string) bool {
	if Trim(s) == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

// IsWholeNumber reports whether s is non-empty and contains only
// digits.
func IsWholeNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// EqualsIgnoreCase compares two strings without regard to case.
func EqualsIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}
