// Package text provides the canonical-form helpers the matcher builds every
// regex and comparison on: dash/whitespace collapsing, diacritic stripping,
// camel-word detection, and tester-string construction. Every scorer in
// internal/index works against these canonical forms rather than raw
// bytes, so that identity of tokens — not encoding accidents — drives
// matching.
//
// The rune-by-rune scanning style here follows the teacher's lexer
// (internal/lexer in the DWScript interpreter this module was built
// from): no regexp.MustCompile in the hot normalization path, just a
// strings.Builder walked once per input.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// isDashRune reports whether r is one of the characters dedash collapses:
// ASCII hyphen, underscore, dot, en-dash, em-dash, or any whitespace rune.
func isDashRune(r rune) bool {
	switch r {
	case '-', '_', '.', '–', '—':
		return true
	}
	return unicode.IsSpace(r)
}

// Dedash collapses any run of '-', '_', '.', whitespace, en-dash (–) or
// em-dash (—) into a single ASCII space. Leading/trailing runs collapse to
// a single leading/trailing space rather than being trimmed; callers that
// want a trimmed result should call SimplifyWhitespace afterward.
func Dedash(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if isDashRune(r) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// Deaccent NFD-decomposes s and drops combining marks, yielding an
// ASCII-ish form where accented letters fold to their base letter
// ("café" -> "cafe").
func Deaccent(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SimplifyWhitespace trims s and collapses any internal run of whitespace
// to a single ASCII space.
func SimplifyWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	started := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if started {
				inSpace = true
			}
			continue
		}
		if inSpace {
			b.WriteByte(' ')
			inSpace = false
		}
		b.WriteRune(r)
		started = true
	}
	return b.String()
}

// IsCamelWord reports whether s contains an internal case or digit/letter
// boundary suggestive of a camel-cased identifier: a lowercase-to-uppercase
// transition ("FooBar", "OveMer") or a letter/digit transition in either
// direction ("R1", "100mg").
func IsCamelWord(s string) bool {
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		a, b := runes[i-1], runes[i]
		if unicode.IsLower(a) && unicode.IsUpper(b) {
			return true
		}
		if unicode.IsLetter(a) && unicode.IsDigit(b) {
			return true
		}
		if unicode.IsDigit(a) && unicode.IsLetter(b) {
			return true
		}
	}
	return false
}

// IsStrictCamelWord is a stricter form of IsCamelWord: it requires either a
// plain lowercase-then-uppercase boundary, or an acronym-to-word boundary
// (two uppercase letters followed by a lowercase one, as in the "PSe" of
// "HTTPServer" — the second uppercase letter starts the new word).
func IsStrictCamelWord(s string) bool {
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
			return true
		}
	}
	for i := 2; i < len(runes); i++ {
		if unicode.IsUpper(runes[i-2]) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i]) {
			return true
		}
	}
	return false
}

// isTesterWordRune reports whether r can appear inside an alphanumeric
// tester token (including the digit-separator underscore handled by the
// caller).
func isTesterWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// MakeXTester segments s into tokens over alphanumeric runs, an optional
// leading underscore, tildes, and '?'/'!', and joins the tokens with single
// spaces, prefixed by a leading space. Quotes and brackets are dropped but
// still separate tokens. Returns "" if no token is found.
func MakeXTester(s string) string {
	var tokens []string
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == '~' || r == '?' || r == '!':
			tokens = append(tokens, string(r))
			i++
		case r == '_' && i+1 < len(runes) && isTesterWordRune(runes[i+1]):
			start := i
			i++
			for i < len(runes) && isTesterWordRune(runes[i]) {
				i++
			}
			tokens = append(tokens, strings.ToLower(string(runes[start:i])))
		case isTesterWordRune(r):
			start := i
			for i < len(runes) && isTesterWordRune(runes[i]) {
				i++
			}
			tokens = append(tokens, strings.ToLower(string(runes[start:i])))
		default:
			i++
		}
	}
	if len(tokens) == 0 {
		return ""
	}
	return " " + strings.Join(tokens, " ")
}

// stopWords is the closed set of tokens XTesterRemoveStops strips.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "at": true,
	"be": true, "been": true, "can": true, "did": true, "do": true,
	"for": true, "has": true, "how": true, "if": true, "in": true,
	"is": true, "isnt": true, "it": true, "new": true, "of": true,
	"on": true, "or": true, "that": true, "the": true, "their": true,
	"they": true, "this": true, "to": true, "we": true, "were": true,
	"what": true, "which": true, "with": true, "you": true,
}

// IsStopWord reports whether word (compared case-insensitively) is in the
// closed stop-word set.
func IsStopWord(word string) bool {
	return stopWords[strings.ToLower(word)]
}

// XTesterRemoveStops removes, case-insensitively, any whole-token
// occurrence of the closed stop-word set from a tester string produced by
// MakeXTester, preserving the leading-space format. Returns "" if nothing
// remains.
func XTesterRemoveStops(s string) string {
	fields := strings.Fields(s)
	kept := fields[:0:0]
	for _, f := range fields {
		if !IsStopWord(f) {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return " " + strings.Join(kept, " ")
}
