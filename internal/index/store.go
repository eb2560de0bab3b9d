package index

import (
	"strings"

	"github.com/abbrevidx/abbrevidx/internal/diag"
	"github.com/abbrevidx/abbrevidx/internal/text"
	"github.com/abbrevidx/abbrevidx/pkg/ident"
)

// Index is the matcher: an append-only list of entries plus the caches and
// priority table queries are scored against. The zero value is not usable;
// construct one with New.
type Index struct {
	entries []*Entry

	nAnalyzed        int
	nDeparenthesized int
	priorities       map[uint32]float64
	xCache           map[string][]EntryHandle
	legacyCache      map[string][]EntryHandle

	// EnableLegacyScorer controls whether FindAll also runs the legacy
	// word-order scorer as a cross-check (spec: "production builds can
	// disable the legacy scorer entirely; test and debug builds run
	// both and compare"). Defaults to true.
	EnableLegacyScorer bool

	// Diag receives the divergence diagnostic when the two scorers
	// disagree. Defaults to diag.Default (a no-op) when nil.
	Diag diag.Sink
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		priorities:         make(map[uint32]float64),
		xCache:             make(map[string][]EntryHandle),
		legacyCache:        make(map[string][]EntryHandle),
		EnableLegacyScorer: true,
	}
}

func (idx *Index) sink() diag.Sink {
	if idx.Diag != nil {
		return idx.Diag
	}
	return diag.Default
}

func normalizeName(name string) string {
	return text.SimplifyWhitespace(text.Deaccent(name))
}

// NEntries returns the number of registered entries, including any aliases
// generated by AddPhrase's strict-camel split or by AddDeparenthesized.
func (idx *Index) NEntries() int {
	return len(idx.entries)
}

// Entry returns the entry at handle h. Handles remain valid across later
// Add* calls since the entry list is append-only.
func (idx *Index) Entry(h EntryHandle) *Entry {
	return idx.entries[h]
}

func (idx *Index) appendEntry(e *Entry) EntryHandle {
	idx.entries = append(idx.entries, e)
	return EntryHandle(len(idx.entries) - 1)
}

// AddPhrase registers name (after deaccent + whitespace simplification) as
// a phrase entry with an eager value, and returns its handle. If the
// normalized name is a single strict-camel word with no spaces ("FooBar"),
// a second entry is also appended whose name is split at case boundaries
// ("Foo Bar"), so that both spellings can be found by later queries.
func (idx *Index) AddPhrase(name string, value any, tflags uint32) EntryHandle {
	norm := normalizeName(name)
	h := idx.appendEntry(&Entry{name: norm, tflags: tflags, value: value, hasValue: true})
	idx.afterAddPhrase(norm, tflags, value, nil, nil)
	return h
}

// AddPhraseLazy is AddPhrase for a value produced by loader(args) on first
// use. loader must not return nil and must not call back into idx.
func (idx *Index) AddPhraseLazy(name string, loader Loader, args []any, tflags uint32) EntryHandle {
	norm := normalizeName(name)
	h := idx.appendEntry(&Entry{name: norm, tflags: tflags, loader: loader, loaderArgs: args})
	idx.afterAddPhrase(norm, tflags, nil, loader, args)
	return h
}

func (idx *Index) afterAddPhrase(norm string, tflags uint32, value any, loader Loader, args []any) {
	if text.IsStrictCamelWord(norm) && !strings.ContainsAny(norm, " \t\n\r") {
		if split := splitStrictCamel(norm); split != norm {
			clone := &Entry{name: split, tflags: tflags}
			if loader != nil {
				clone.loader = loader
				clone.loaderArgs = args
			} else {
				clone.value = value
				clone.hasValue = true
			}
			idx.appendEntry(clone)
		}
	}
	idx.invalidateAll()
}

// AddKeyword registers name as a keyword entry: name must contain no
// whitespace. Appending a keyword purges any cached query result that
// previously matched name's lowercased form, so later queries for that
// exact keyword see it immediately, without discarding unrelated cached
// results.
func (idx *Index) AddKeyword(name string, value any, tflags uint32) EntryHandle {
	requireNoWhitespace(name)
	h := idx.appendEntry(&Entry{name: text.Deaccent(name), tflags: tflags | TFlagKW, value: value, hasValue: true})
	idx.invalidateKeyword(name)
	return h
}

// AddKeywordLazy is AddKeyword for a lazily-loaded value.
func (idx *Index) AddKeywordLazy(name string, loader Loader, args []any, tflags uint32) EntryHandle {
	requireNoWhitespace(name)
	h := idx.appendEntry(&Entry{name: text.Deaccent(name), tflags: tflags | TFlagKW, loader: loader, loaderArgs: args})
	idx.invalidateKeyword(name)
	return h
}

func requireNoWhitespace(name string) {
	if strings.ContainsAny(name, " \t\n\r\v\f") {
		panic(&PreconditionError{Message: "keyword name \"" + name + "\" contains whitespace"})
	}
}

// SetPriority records prio as the priority for every tag value whose low 8
// bits equal tflags&0xFF. Higher priorities displace lower ones in query
// results (see FindEntries).
func (idx *Index) SetPriority(tflags uint32, prio float64) {
	idx.priorities[tflags&TFlagPriorityMask] = prio
}

func (idx *Index) priorityOf(tflags uint32) float64 {
	return idx.priorities[tflags&TFlagPriorityMask]
}

// analyze computes dedashName/tester for every entry appended since the
// last analyze call. Entries are never re-analyzed once processed.
func (idx *Index) analyze() {
	for i := idx.nAnalyzed; i < len(idx.entries); i++ {
		e := idx.entries[i]
		if e.analyzed {
			continue
		}
		e.dedashName = text.Dedash(e.name)
		if e.IsKeyword() {
			e.tester = " " + strings.ToLower(e.name)
		} else {
			e.tester = text.MakeXTester(e.name)
		}
		e.analyzed = true
	}
	idx.nAnalyzed = len(idx.entries)
}

func (idx *Index) invalidateAll() {
	idx.xCache = make(map[string][]EntryHandle)
	idx.legacyCache = make(map[string][]EntryHandle)
}

// invalidateKeyword purges cache entries whose pattern, compared
// case-insensitively, equals name. Cached results for every other pattern
// are kept, including patterns the new keyword would also match through
// the word scorers (a prefix such as "xy" for keyword "xyz").
func (idx *Index) invalidateKeyword(name string) {
	for k := range idx.xCache {
		if ident.Equal(k, name) {
			delete(idx.xCache, k)
		}
	}
	for k := range idx.legacyCache {
		if ident.Equal(k, name) {
			delete(idx.legacyCache, k)
		}
	}
}
