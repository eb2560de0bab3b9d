package index

import (
	"strings"
	"unicode"

	"github.com/abbrevidx/abbrevidx/internal/text"
)

// atom is one piece of a segmented pattern: a run of letters, a run of
// digits, or a single sigil character (~, ?, !). The "new" scorer never
// builds an actual regexp.Regexp for these — Go's RE2 engine has no
// lookahead, and the digit-boundary guard below needs one. Instead atoms
// drive a hand-rolled alignment walk (align, below) that simulates the
// lazy-skip-and-lookahead regex the spec describes.
type atom struct {
	text           string // lowercase atom text
	numeric        bool   // this atom is a run of digits
	open           bool   // a literal '*' immediately follows this atom in the pattern
	adjacentToNext bool   // no token boundary is allowed between this atom and the next
}

// segmentAtoms splits pattern into atoms and reports whether the pattern
// opens with a bare '*' (a "leading star", which in align's caller
// disables status-classification entirely rather than just one atom's
// guard). A '*' anywhere else marks the atom immediately before it open.
func segmentAtoms(pattern string) (atoms []atom, leadingStar bool) {
	runes := []rune(pattern)
	lower := []rune(strings.ToLower(pattern))
	camel := text.IsCamelWord(pattern)

	var starts, ends []int
	n := len(runes)
	i := 0
	for i < n {
		r := runes[i]
		if r == '*' {
			if len(atoms) == 0 {
				leadingStar = true
			} else {
				atoms[len(atoms)-1].open = true
			}
			i++
			continue
		}
		switch {
		case r == '~' || r == '?' || r == '!':
			atoms = append(atoms, atom{text: string(lower[i])})
			starts, ends = append(starts, i), append(ends, i+1)
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < n && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			atoms = append(atoms, atom{text: string(lower[start:i]), numeric: true})
			starts, ends = append(starts, start), append(ends, i)
		case camel && unicode.IsUpper(r):
			j := i
			for j < n && unicode.IsUpper(runes[j]) {
				j++
			}
			switch {
			case j > i+1 && j < n && unicode.IsLower(runes[j]):
				// Acronym run followed by a word: peel off every letter but
				// the last as an independent atom ("HTTPServer" -> H,T,T,P
				// each alone), and let the last (S) join the word that follows.
				for k := i; k < j-1; k++ {
					atoms = append(atoms, atom{text: string(lower[k])})
					starts, ends = append(starts, k), append(ends, k+1)
				}
				i = j - 1
			case j == i+1 && j < n && unicode.IsLower(runes[j]):
				start := i
				k := i + 1
				for k < n && (unicode.IsLower(runes[k]) || runes[k] == '~') {
					k++
				}
				atoms = append(atoms, atom{text: string(lower[start:k])})
				starts, ends = append(starts, start), append(ends, k)
				i = k
			default:
				for k := i; k < j; k++ {
					atoms = append(atoms, atom{text: string(lower[k])})
					starts, ends = append(starts, k), append(ends, k+1)
				}
				i = j
			}
		case unicode.IsLetter(r):
			start := i
			for i < n && unicode.IsLetter(runes[i]) && !(camel && i > start && unicode.IsUpper(runes[i])) {
				i++
			}
			atoms = append(atoms, atom{text: string(lower[start:i])})
			starts, ends = append(starts, start), append(ends, i)
		default:
			i++
		}
	}

	for k := 1; k < len(atoms); k++ {
		if starts[k] == ends[k-1] && atoms[k].numeric != atoms[k-1].numeric {
			atoms[k-1].adjacentToNext = true
		}
	}
	return atoms, leadingStar
}

// matchChain tries to align atoms[start:] against token, consuming as many
// adjacent-chained atoms as the chain calls for. It returns whether the
// chain matched as a prefix of token, how many atoms it consumed, and
// whether the match consumed the whole token (a "full word" match).
func matchChain(atoms []atom, start int, token string) (matched bool, consumed int, fullWord bool) {
	pos := 0
	i := start
	for {
		a := atoms[i]
		if pos+len(a.text) > len(token) || token[pos:pos+len(a.text)] != a.text {
			return false, 0, false
		}
		newPos := pos + len(a.text)
		if a.numeric && !a.open && newPos < len(token) && isASCIIDigit(token[newPos]) {
			return false, 0, false
		}
		pos = newPos
		i++
		if i >= len(atoms) || !atoms[i-1].adjacentToNext {
			break
		}
	}
	return true, i - start, pos == len(token)
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// alignment is the outcome of walking a pattern's atoms across one
// entry's tester tokens.
type alignment struct {
	matched bool

	interiorSkipped []int // tokens skipped before the final consumed match (leading or internal)
	trailingSkipped []int // tokens left over after the last consumed match

	partials    int  // consumed chains that matched only a prefix of their token
	allFullWord bool // every consumed chain matched its token exactly (partials == 0)
	consumedAll bool // no tokens were skipped at all, interior or trailing
}

func (al alignment) skipped() []int {
	if len(al.interiorSkipped) == 0 {
		return al.trailingSkipped
	}
	return append(append([]int{}, al.interiorSkipped...), al.trailingSkipped...)
}

// align walks atoms left to right against tokens, consuming one token per
// match group (a chain of adjacent atoms is matched inside that single
// token) and recording every unconsumed token as skipped. This is the
// purpose-built simulator standing in for the spec's lazy-skip,
// lookahead-guarded regex.
func align(atoms []atom, tokens []string) alignment {
	if len(atoms) == 0 {
		return alignment{}
	}
	var interior []int
	partials := 0
	ti := 0
	ai := 0
	for ai < len(atoms) {
		found := false
		for ; ti < len(tokens); ti++ {
			if matched, consumed, fullWord := matchChain(atoms, ai, tokens[ti]); matched {
				ai += consumed
				if !fullWord {
					partials++
				}
				ti++
				found = true
				break
			}
			interior = append(interior, ti)
		}
		if !found {
			return alignment{matched: false}
		}
	}
	var trailing []int
	for ; ti < len(tokens); ti++ {
		trailing = append(trailing, ti)
	}
	return alignment{
		matched:         true,
		interiorSkipped: interior,
		trailingSkipped: trailing,
		partials:        partials,
		allFullWord:     partials == 0,
		consumedAll:     len(interior) == 0 && len(trailing) == 0,
	}
}

// xstatus classifies a successful alignment per spec §4.4 step 5. tokens
// must be the same slice passed to align. hasStar is true when the
// pattern contained '*' anywhere (leading or trailing an atom).
func xstatus(al alignment, tokens []string, hasStar bool, isKeyword bool) int {
	allSkippedAreStopwords := true
	for _, idx := range al.skipped() {
		if !text.IsStopWord(tokens[idx]) {
			allSkippedAreStopwords = false
			break
		}
	}
	if hasStar {
		if allSkippedAreStopwords {
			return 1
		}
		return 0
	}
	if al.consumedAll {
		return 3
	}
	if allSkippedAreStopwords && !isKeyword {
		return 2
	}
	if al.allFullWord && !isKeyword {
		return 1
	}
	return 0
}

// xfindAll is the "new" scorer path (_xfind_all in the spec): it
// segments pattern, pre-filters entries whose tester aligns with the
// resulting atoms (or, for a pattern without spaces, whose tester is
// exactly the lowercased pattern), and — when more than one survives and
// the pattern does not open with '*' — narrows to the survivors with the
// highest xstatus.
func (idx *Index) xfindAll(pattern string) []EntryHandle {
	idx.analyze()
	canon := text.Deaccent(pattern)
	atoms, leadingStar := segmentAtoms(canon)
	if len(atoms) == 0 {
		return nil
	}
	hasStar := leadingStar
	for _, a := range atoms {
		if a.open {
			hasStar = true
		}
	}

	type survivor struct {
		h      EntryHandle
		al     alignment
		tokens []string
	}
	exact := ""
	if !strings.Contains(canon, " ") {
		exact = " " + strings.ToLower(canon)
	}
	var survivors []survivor
	for i, e := range idx.entries {
		tokens := strings.Fields(e.tester)
		var al alignment
		if exact != "" && e.tester == exact {
			al = alignment{matched: true, allFullWord: true, consumedAll: true}
		} else {
			al = align(atoms, tokens)
		}
		if al.matched {
			survivors = append(survivors, survivor{h: EntryHandle(i), al: al, tokens: tokens})
		}
	}

	if len(survivors) <= 1 || leadingStar {
		out := make([]EntryHandle, len(survivors))
		for i, s := range survivors {
			out[i] = s.h
		}
		return out
	}

	best := -1
	statuses := make([]int, len(survivors))
	for i, s := range survivors {
		statuses[i] = xstatus(s.al, s.tokens, hasStar, idx.entries[s.h].IsKeyword())
		if statuses[i] > best {
			best = statuses[i]
		}
	}
	var out []EntryHandle
	for i, s := range survivors {
		if statuses[i] == best {
			out = append(out, s.h)
		}
	}
	return out
}
