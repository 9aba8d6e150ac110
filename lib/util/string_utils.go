package util

import "strings"

// ConditionalString returns valueIfTrue if condition is true, otherwise valueIfFalse
func ConditionalString(condition bool, valueIfTrue, valueIfFalse string) string {
	if condition {
		return valueIfTrue
	}
	return valueIfFalse
}

// IsBlank reports whether the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank reports whether the string contains at least one non-whitespace character.
func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimOrEmpty trims surrounding whitespace, returning "" for blank input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}
