// Package utils provides shared utilities for text normalization and logging.
package utils

import "strings"

// NormalizeName canonicalizes an institution name for indexing and lookup:
// leading/trailing whitespace is trimmed, internal whitespace runs collapse
// to a single space, and the result is lower-cased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Tokenize splits a normalized name into its whitespace-delimited words.
// Returns nil for an empty or all-whitespace input.
func Tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Truncate returns s truncated to maxLen characters, with "..." appended if truncated.
// If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
