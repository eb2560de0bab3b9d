package index

import (
	"strings"

	"github.com/abbrevidx/abbrevidx/internal/text"
)

// AbbreviationMatchTracker runs the "legacy" word-order scorer: the match
// class ladder of spec §4.3, kept only as a cross-check against the new
// scorer (see Index.FindAll). It holds no state between calls; it is a
// named type, rather than a bare function, so a caller wiring a
// diagnostic around it has something to log against.
type AbbreviationMatchTracker struct{}

// demeritFraction converts an accumulated demerit count into the
// fractional quality term f = 1 - 1/64 * min(demerits+1, 63) that
// refines match classes 6 and 1.
func demeritFraction(demerits int) float64 {
	if demerits+1 > 63 {
		demerits = 62
	}
	return 1 - 0.015625*float64(demerits+1)
}

// wordMatch runs the shared word/camel alignment (align, in
// scoring_new.go) against one entry's tester and converts the result
// into a demerit-weighted fractional score. Class calls this once on
// the raw forms (class 6+f) and once on the accent-folded forms (class
// 1+f); that's the only difference between the two rungs.
func (AbbreviationMatchTracker) wordMatch(pattern string, e *Entry) (f float64, ok bool) {
	atoms, leadingStar := segmentAtoms(pattern)
	if len(atoms) == 0 {
		return 0, false
	}
	hasStar := leadingStar
	for _, a := range atoms {
		if a.open {
			hasStar = true
		}
	}
	tokens := strings.Fields(e.tester)
	al := align(atoms, tokens)
	if !al.matched {
		return 0, false
	}

	demerits := al.partials
	if len(al.interiorSkipped) > 0 && !leadingStar {
		demerits += 4
	} else if len(al.trailingSkipped) > 0 && !hasStar {
		demerits += 4
	}
	return demeritFraction(demerits), true
}

// Class computes the match class of pattern against entry e per the
// spec §4.3 ladder: 9 down through 0, with the 6 and 1 rungs carrying a
// fractional refinement from wordMatch's demerit count.
func (t AbbreviationMatchTracker) Class(pattern string, e *Entry) float64 {
	if pattern == e.name {
		return 9
	}
	dedashPattern := text.Dedash(pattern)
	dedashName := text.Dedash(e.name)
	if dedashPattern == dedashName {
		return 8
	}
	if strings.EqualFold(dedashPattern, dedashName) {
		return 7
	}
	if f, ok := t.wordMatch(pattern, e); ok {
		return 6 + f
	}

	deaccentPattern := text.Deaccent(pattern)
	deaccentEntry := &Entry{name: text.Deaccent(e.name), tester: text.Deaccent(e.tester), tflags: e.tflags}
	if deaccentPattern == deaccentEntry.name {
		return 5
	}
	dedashDeaccentPattern := text.Dedash(deaccentPattern)
	dedashDeaccentName := text.Dedash(deaccentEntry.name)
	if dedashDeaccentPattern == dedashDeaccentName {
		return 4
	}
	if strings.EqualFold(dedashDeaccentPattern, dedashDeaccentName) {
		return 3
	}
	if f, ok := t.wordMatch(deaccentPattern, deaccentEntry); ok {
		return 1 + f
	}
	return 0
}

// findAllLegacy is the _find_all path: score every entry and retain only
// those tied at the highest class observed.
func (idx *Index) findAllLegacy(pattern string) []EntryHandle {
	idx.analyze()
	var tracker AbbreviationMatchTracker
	best := 0.0
	classes := make([]float64, len(idx.entries))
	for i, e := range idx.entries {
		classes[i] = tracker.Class(pattern, e)
		if classes[i] > best {
			best = classes[i]
		}
	}
	if best == 0 {
		return nil
	}
	var out []EntryHandle
	for i, c := range classes {
		if c == best {
			out = append(out, EntryHandle(i))
		}
	}
	return out
}
