// Package ident provides case-insensitive identifier utilities: normalizing
// a name to a canonical lookup key, comparing two names ignoring case, and a
// generic case-insensitive map built on top of them.
//
// The matcher in internal/index uses Equal when a newly added keyword
// purges case-insensitively equal patterns from its query caches, and
// cmd/abbrevidx uses Map to detect duplicate entry names in a loaded
// entry-set file.
package ident

import "strings"

// Normalize returns s folded to a canonical lowercase form suitable for use
// as a map key. Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.ToLower(s)
}

// Equal reports whether a and b are the same identifier, ignoring case.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Compare orders a and b case-insensitively: negative if a < b, zero if
// equal (ignoring case), positive if a > b.
func Compare(a, b string) int {
	return strings.Compare(Normalize(a), Normalize(b))
}

// Contains reports whether search occurs in items, ignoring case.
func Contains(items []string, search string) bool {
	return Index(items, search) >= 0
}

// Index returns the position of the first case-insensitive occurrence of
// search in items, or -1 if not present.
func Index(items []string, search string) int {
	for i, item := range items {
		if Equal(item, search) {
			return i
		}
	}
	return -1
}

// IsKeyword reports whether s matches any of keywords, ignoring case.
func IsKeyword(s string, keywords ...string) bool {
	return Contains(keywords, s)
}
