package index

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/abbrevidx/abbrevidx/internal/text"
)

// KeywordClass selects the shape of a synthesized keyword, and may carry
// the Ensure bit to force installation of a fresh unique alias when no
// natural candidate is unique.
type KeywordClass uint8

const (
	Camel KeywordClass = 1 << iota
	Dash
	Underscore
	Ensure
)

func (c KeywordClass) shape() KeywordClass { return c &^ Ensure }

// resolvesOnlyTo reports whether pattern, queried against tflags,
// resolves unambiguously to target: every surviving entry must share
// target's value (or, when the value type admits no equality check, be
// target itself).
func (idx *Index) resolvesOnlyTo(pattern string, tflags uint32, target EntryHandle) bool {
	if pattern == "" {
		return false
	}
	handles := idx.FindEntries(pattern, tflags)
	if len(handles) == 0 {
		return false
	}
	targetValue := idx.Entry(target).Value()
	for _, h := range handles {
		if h == target {
			continue
		}
		v := idx.Entry(h).Value()
		if eq, comparable := valuesEqual(v, targetValue); !comparable || !eq {
			return false
		}
	}
	return true
}

func titleCaseWord(w string) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func allDigits(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func truncate(w string, n int) string {
	r := []rune(w)
	if len(r) <= n {
		return w
	}
	return string(r[:n])
}

// camelWindow builds one CAMEL candidate from a window of tokens,
// truncating each to its first three letters and title-casing it, and
// inserting an underscore between two consecutive purely-numeric tokens
// so their digit runs don't silently merge.
func camelWindow(tokens []string) string {
	var b strings.Builder
	for i, w := range tokens {
		if i > 0 && allDigits(tokens[i-1]) && allDigits(w) {
			b.WriteByte('_')
		}
		b.WriteString(titleCaseWord(truncate(w, 3)))
	}
	return b.String()
}

// candidateBase picks the shortest name that still resolves unambiguously
// to target: the deaccented display name, its parenthesis-stripped form
// if that stays unique, and (when more than two tokens remain) its
// stop-word-stripped form if that too stays unique.
func (idx *Index) candidateBase(target EntryHandle, tflags uint32) []string {
	e := idx.Entry(target)
	name := e.name
	if stripped := stripTrailingRemark(name); stripped != name && stripped != "" {
		if idx.resolvesOnlyTo(stripped, tflags, target) {
			name = stripped
		}
	}
	tester := text.MakeXTester(name)
	tokens := strings.Fields(tester)
	if len(tokens) > 2 {
		strippedTokens := strings.Fields(text.XTesterRemoveStops(tester))
		if len(strippedTokens) > 0 {
			if idx.resolvesOnlyTo(strings.Join(strippedTokens, " "), tflags, target) {
				tokens = strippedTokens
			}
		}
	}
	return tokens
}

func (idx *Index) camelCandidates(tokens []string) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = titleCaseWord(t)
	}
	var candidates []string
	if len(tokens) == 1 {
		w := tokens[0]
		n := 3
		if len(w) < 7 {
			n = len(w)
			if n > 6 {
				n = 6
			}
		}
		candidates = append(candidates, titleCaseWord(truncate(w, n)))
		return candidates
	}

	full := camelWindow(tokens)
	candidates = append(candidates, full)
	for start := 0; start < len(tokens); start++ {
		end := start + 3
		if end > len(tokens) {
			end = len(tokens)
		}
		if end-start < 3 && start > 0 {
			break
		}
		candidates = append(candidates, camelWindow(tokens[start:end]))
		if end == len(tokens) {
			break
		}
	}
	return candidates
}

// FindEntryKeyword synthesizes a short keyword identifying target,
// following spec §4.5: a shortened base name, the requested shape
// (CAMEL/DASH/UNDERSCORE), and, if class carries Ensure, a ".N" suffix
// fallback that always succeeds and installs the result as a new alias
// entry.
func (idx *Index) FindEntryKeyword(target EntryHandle, class KeywordClass, tflags uint32) (string, bool) {
	tokens := idx.candidateBase(target, tflags)
	if len(tokens) == 0 {
		tokens = []string{strings.ToLower(idx.Entry(target).name)}
	}

	var candidates []string
	switch class.shape() {
	case Camel:
		candidates = idx.camelCandidates(tokens)
	case Dash:
		candidates = []string{strings.Join(tokens, "-")}
	case Underscore:
		candidates = []string{strings.Join(tokens, "_")}
	default:
		candidates = idx.camelCandidates(tokens)
	}

	for _, cand := range candidates {
		if idx.resolvesOnlyTo(cand, tflags, target) {
			if class.shape() == Camel && len(tokens) > 1 && class&Ensure != 0 {
				idx.installLowercaseAlias(target, cand, tflags)
			}
			return cand, true
		}
	}

	if class&Ensure == 0 {
		return "", false
	}

	// Check whether an earlier Ensure call for this exact target already
	// installed a suffixed alias before claiming a new one — otherwise a
	// second call for an entry whose natural candidates are themselves
	// ambiguous would find ".1" taken (by its own earlier alias) and move
	// on to ".2", breaking the "calling it twice returns the same string"
	// guarantee.
	base := candidates[0]
	for i := 1; ; i++ {
		cand := base + "." + strconv.Itoa(i)
		if idx.resolvesOnlyTo(cand, tflags, target) {
			return cand, true
		}
		if len(idx.FindEntries(cand, tflags)) == 0 {
			idx.installAlias(target, cand)
			return cand, true
		}
	}
}

// EnsureEntryKeyword is FindEntryKeyword with the Ensure bit forced on,
// guaranteeing a result: calling it twice for the same entry returns the
// same string, since the first call installs it as a findable alias.
func (idx *Index) EnsureEntryKeyword(target EntryHandle, class KeywordClass, tflags uint32) string {
	kw, _ := idx.FindEntryKeyword(target, class|Ensure, tflags)
	return kw
}

func (idx *Index) installAlias(target EntryHandle, name string) {
	e := idx.Entry(target)
	if e.hasValue {
		idx.AddKeyword(name, e.value, e.tflags)
	} else {
		idx.AddKeywordLazy(name, e.loader, e.loaderArgs, e.tflags)
	}
}

func (idx *Index) installLowercaseAlias(target EntryHandle, candidate string, tflags uint32) {
	lower := strings.ToLower(candidate)
	if idx.resolvesOnlyTo(lower, tflags, target) {
		return
	}
	idx.installAlias(target, lower)
}
