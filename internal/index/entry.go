// Package index implements the abbreviation/keyword matcher: an in-memory,
// append-only registry of named entries that can be queried with short
// patterns (abbreviations, camel sigils, wildcards) and that can itself
// synthesize a short keyword that uniquely identifies one of its entries.
//
// The package is organized the way the teacher this module was adapted
// from organizes its own multi-file packages (internal/semantic/passes in
// the DWScript interpreter): one file per concern, sharing the Index and
// Entry types declared here.
package index

import "fmt"

// TFlagKW marks an entry as a keyword: a single token with no internal
// whitespace. A pattern equal to its lowercased name matches it exactly;
// it is also scored by the word scorers like any other entry. It occupies the high reserved bit of the tag bitfield; bits
// below it are free for caller-defined category masks, and the low 8 bits
// select a priority tier (see Index.SetPriority).
const TFlagKW uint32 = 0x10000000

// TFlagPriorityMask isolates the low 8 bits of a tag value that select a
// priority tier.
const TFlagPriorityMask uint32 = 0xFF

// EntryHandle identifies a registered entry by its position in the
// index's append-only entry list. The list never reorders or removes
// entries, so a handle obtained from AddPhrase/AddKeyword/etc. stays valid
// across every later Add* call.
type EntryHandle int

// Loader produces an entry's value on first use. It receives the args
// recorded at AddPhraseLazy/AddKeywordLazy time. A Loader must not call
// back into the Index it was registered on, and must not return nil —
// doing so is a programmer error (see PreconditionError).
type Loader func(args []any) any

// Entry is a registered (name, value, tflags) triple, plus the fields the
// matcher derives from name during analysis.
type Entry struct {
	name   string // display name, after deaccent + whitespace simplification
	tflags uint32

	dedashName string // name with dash/underscore/whitespace runs collapsed; filled during analysis
	tester     string // canonical tester string (see internal/text); filled during analysis
	analyzed   bool

	value      any
	hasValue   bool
	loader     Loader
	loaderArgs []any

	deparenthesized bool // true once add_deparenthesized has considered this entry
}

// Name returns the entry's display name.
func (e *Entry) Name() string { return e.name }

// TFlags returns the entry's tag bitfield.
func (e *Entry) TFlags() uint32 { return e.tflags }

// IsKeyword reports whether the entry was registered as a keyword.
func (e *Entry) IsKeyword() bool { return e.tflags&TFlagKW != 0 }

// Value returns the entry's payload, materializing it from its loader on
// first use if the entry was registered lazily. The loaded value is
// memoized; the loader is never invoked more than once per entry.
func (e *Entry) Value() any {
	if e.hasValue {
		return e.value
	}
	v := e.loader(e.loaderArgs)
	if v == nil {
		panic(&PreconditionError{Message: fmt.Sprintf("lazy loader for entry %q returned nil", e.name)})
	}
	e.value = v
	e.hasValue = true
	e.loader = nil
	e.loaderArgs = nil
	return v
}

// PreconditionError reports a programmer error: a precondition the matcher
// documents as mandatory (no whitespace in a keyword name, a non-nil
// loader result) was violated by the caller. These are not recoverable
// query failures — spec and convention agree they should abort the
// process, so the matcher panics with this type rather than returning an
// error value.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return "abbrevidx: precondition violated: " + e.Message
}
