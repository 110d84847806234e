package core

import "strings"

// NormalizeKey canonicalizes a question for use as a store key:
// lower-cased and trimmed of surrounding whitespace.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Tokens splits text into lower-cased whitespace-delimited tokens.
// Empty and whitespace-only input yields an empty slice.
func Tokens(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// UniqueTokens returns the tokens of s with duplicates removed,
// preserving first-seen order.
func UniqueTokens(s string) []string {
	tokens := Tokens(s)
	seen := make(map[string]bool, len(tokens))
	unique := tokens[:0]
	for _, tok := range tokens {
		if !seen[tok] {
			seen[tok] = true
			unique = append(unique, tok)
		}
	}
	return unique
}
