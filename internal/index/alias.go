package index

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/abbrevidx/abbrevidx/internal/text"
)

// trailingRemarkRe matches a trailing parenthesized or bracketed remark,
// with any leading whitespace, at the very end of a name: "Paper (draft)"
// -> " (draft)", "Paper [draft]" -> " [draft]". No lookahead is needed
// here, so this is one of the few places the matcher reaches for regexp
// directly instead of the hand-rolled scanners in scoring_new.go.
var trailingRemarkRe = regexp.MustCompile(`\s*(\([^()]*\)|\[[^\[\]]*\])\s*$`)

// stripTrailingRemark removes a single trailing parenthesized or
// bracketed remark from name, along with the whitespace that introduces
// it. It returns name unchanged if there is no such trailing remark.
func stripTrailingRemark(name string) string {
	loc := trailingRemarkRe.FindStringIndex(name)
	if loc == nil {
		return name
	}
	return strings.TrimRight(name[:loc[0]], " ")
}

// AddDeparenthesized scans every phrase entry appended since the last call
// (keywords are skipped; they never carry parenthesized or bracketed
// remarks) and, for each whose name ends in "(...)" or "[...]", appends a
// second entry under the stripped name sharing the same value and tflags
// — but only when (a) the stripped name differs from the original and
// (b) its tester differs from every tester already registered, so two
// entries that strip to the same name don't produce duplicate-tester
// clones. Entries are processed at most once — a high-water mark tracks
// how far this pass has reached, mirroring analyze's nAnalyzed
// bookkeeping.
func (idx *Index) AddDeparenthesized() {
	idx.analyze()
	n := len(idx.entries)

	seenTesters := make(map[string]bool, n)
	for _, e := range idx.entries[:n] {
		seenTesters[e.tester] = true
	}

	for i := idx.nDeparenthesized; i < n; i++ {
		e := idx.entries[i]
		if e.deparenthesized || e.IsKeyword() {
			continue
		}
		e.deparenthesized = true
		stripped := stripTrailingRemark(e.name)
		if stripped == e.name || stripped == "" {
			continue
		}
		cloneTester := text.MakeXTester(stripped)
		if cloneTester == "" || seenTesters[cloneTester] {
			continue
		}
		seenTesters[cloneTester] = true

		clone := &Entry{name: stripped, tflags: e.tflags}
		if e.hasValue {
			clone.value = e.value
			clone.hasValue = true
		} else {
			clone.loader = e.loader
			clone.loaderArgs = e.loaderArgs
		}
		idx.appendEntry(clone)
	}
	idx.nDeparenthesized = n
	idx.invalidateAll()
}

// splitStrictCamel inserts a space at every boundary IsStrictCamelWord
// detects ("FooBar" -> "Foo Bar", "HTTPServer" -> "HTTP Server"), without
// otherwise altering casing. It returns s unchanged if no boundary exists.
func splitStrictCamel(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	breaks := make([]bool, len(runes))
	for i := 1; i < len(runes); i++ {
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
			breaks[i] = true
		}
	}
	for i := 2; i < len(runes); i++ {
		if unicode.IsUpper(runes[i-2]) && unicode.IsUpper(runes[i-1]) && unicode.IsLower(runes[i]) {
			breaks[i-1] = true
		}
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if i > 0 && breaks[i] {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
