package index

import (
	"reflect"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// FindEntries returns the handles the new scorer judges the best match
// for pattern, narrowed to entries whose tflags intersect the caller's
// mask (when non-zero) and to the highest-priority tier among those
// survivors. The caller's own recorded priority for tflags acts as a
// floor: a survivor can only win by reaching or exceeding it.
func (idx *Index) FindEntries(pattern string, tflags uint32) []EntryHandle {
	survivors := idx.xfindAllCached(pattern)
	if tflags != 0 {
		filtered := survivors[:0:0]
		for _, h := range survivors {
			if idx.entries[h].tflags&tflags != 0 {
				filtered = append(filtered, h)
			}
		}
		survivors = filtered
	}
	if len(survivors) == 0 {
		return nil
	}

	floor := 0.0
	if tflags != 0 {
		floor = idx.priorityOf(tflags)
	}
	best := floor
	for _, h := range survivors {
		if p := idx.priorityOf(idx.entries[h].tflags); p > best {
			best = p
		}
	}
	var out []EntryHandle
	for _, h := range survivors {
		if idx.priorityOf(idx.entries[h].tflags) == best {
			out = append(out, h)
		}
	}
	// Tied survivors have no other intrinsic order; sort by entry name in
	// natural order ("R2" before "R10") so a caller presenting results
	// directly gets a stable, human-friendly order rather than insertion
	// order from the entry table.
	sort.SliceStable(out, func(i, j int) bool {
		return natural.Less(idx.entries[out[i]].name, idx.entries[out[j]].name)
	})
	return out
}

// EntryNames returns the display names of every registered entry, sorted
// in natural order.
func (idx *Index) EntryNames() []string {
	names := make([]string, len(idx.entries))
	for i, e := range idx.entries {
		names[i] = e.name
	}
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	return names
}

func (idx *Index) xfindAllCached(pattern string) []EntryHandle {
	if cached, ok := idx.xCache[pattern]; ok {
		return cached
	}
	result := idx.xfindAll(pattern)
	idx.xCache[pattern] = result
	return result
}

func (idx *Index) findAllLegacyCached(pattern string) []EntryHandle {
	if cached, ok := idx.legacyCache[pattern]; ok {
		return cached
	}
	result := idx.findAllLegacy(pattern)
	idx.legacyCache[pattern] = result
	return result
}

// FindAll returns the value-deduplicated payloads of FindEntries' result.
// When EnableLegacyScorer is set it also runs the legacy scorer (tag-mask
// filtered, for a like-for-like comparison) and logs a diagnostic if the
// two scorers disagree on the result set — the legacy answer is always
// discarded; it exists purely as a cross-check (spec §7, §9).
func (idx *Index) FindAll(pattern string, tflags uint32) []any {
	primary := idx.FindEntries(pattern, tflags)
	values := idx.dedupValues(primary)

	if idx.EnableLegacyScorer {
		legacy := idx.findAllLegacyCached(pattern)
		if tflags != 0 {
			filtered := legacy[:0:0]
			for _, h := range legacy {
				if idx.entries[h].tflags&tflags != 0 {
					filtered = append(filtered, h)
				}
			}
			legacy = filtered
		}
		legacyValues := idx.dedupValues(legacy)
		if !sameValueSet(values, legacyValues) {
			idx.sink().Diagnostic("abbrevidx: scorer divergence for pattern %q: new=%v legacy=%v", pattern, primary, legacy)
		}
	}
	return values
}

// Find1 returns the single value matching pattern, or (nil, false) if
// zero or more than one entry survives.
func (idx *Index) Find1(pattern string, tflags uint32) (any, bool) {
	values := idx.FindAll(pattern, tflags)
	if len(values) != 1 {
		return nil, false
	}
	return values[0], true
}

// FindP is "pedantic" find: it returns FindAll's result when the
// survivor set has at most one element or pattern contains a wildcard,
// and an empty result otherwise — suppressing ambiguous plain-text
// queries while still answering abbreviations and wildcard searches.
func (idx *Index) FindP(pattern string, tflags uint32) []any {
	entries := idx.FindEntries(pattern, tflags)
	if len(entries) <= 1 || strings.Contains(pattern, "*") {
		return idx.FindAll(pattern, tflags)
	}
	return nil
}

func (idx *Index) dedupValues(handles []EntryHandle) []any {
	var out []any
	var outHandles []EntryHandle
	for _, h := range handles {
		v := idx.Entry(h).Value()
		dup := false
		for j, ov := range out {
			if eq, comparable := valuesEqual(v, ov); comparable {
				if eq {
					dup = true
					break
				}
			} else if outHandles[j] == h {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
			outHandles = append(outHandles, h)
		}
	}
	return out
}

// valuesEqual reports whether a and b are equal, and whether that
// question was even decidable by == (the payload type is comparable).
// Callers fall back to identity (same entry handle) when it is not.
func valuesEqual(a, b any) (eq bool, comparable bool) {
	t := reflect.TypeOf(a)
	if t == nil || !t.Comparable() {
		return false, false
	}
	if reflect.TypeOf(b) != t {
		return false, true
	}
	return a == b, true
}

func sameValueSet(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		found := false
		for j, bv := range b {
			if used[j] {
				continue
			}
			if eq, comparable := valuesEqual(av, bv); comparable && eq {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
