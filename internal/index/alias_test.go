package index

import "testing"

func TestStripTrailingRemark(t *testing.T) {
	cases := map[string]string{
		"Paper (draft)":        "Paper",
		"Paper (draft) (v2)":   "Paper (draft)",
		"Paper [draft]":        "Paper",
		"Paper (draft) [v2]":   "Paper (draft)",
		"No parens here":       "No parens here",
		"Edge (unterminated":   "Edge (unterminated",
		"Edge [unterminated":   "Edge [unterminated",
		"Trailing space (x)  ": "Trailing space",
		"Trailing space [x]  ": "Trailing space",
	}
	for in, want := range cases {
		if got := stripTrailingRemark(in); got != want {
			t.Errorf("stripTrailingRemark(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitStrictCamel(t *testing.T) {
	cases := map[string]string{
		"FooBar":         "Foo Bar",
		"HTTPServer":     "HTTP Server",
		"lowercase":      "lowercase",
		"AllUpper":       "All Upper",
		"already spaced": "already spaced",
	}
	for in, want := range cases {
		if got := splitStrictCamel(in); got != want {
			t.Errorf("splitStrictCamel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAddDeparenthesizedIsIdempotentAndIncremental(t *testing.T) {
	idx := New()
	idx.AddPhrase("Paper (draft)", "P", 0)
	idx.AddDeparenthesized()
	n1 := idx.NEntries()
	idx.AddDeparenthesized()
	if idx.NEntries() != n1 {
		t.Fatalf("second AddDeparenthesized call changed entry count: %d -> %d", n1, idx.NEntries())
	}

	idx.AddPhrase("Report (final)", "R", 0)
	idx.AddDeparenthesized()
	if idx.NEntries() != n1+2 {
		t.Fatalf("adding one more parenthesized phrase should add exactly one clone; NEntries = %d, want %d", idx.NEntries(), n1+2)
	}
}

func TestAddDeparenthesizedSkipsDuplicateTesters(t *testing.T) {
	idx := New()
	idx.AddPhrase("Score (final)", "F", 0)
	idx.AddPhrase("Score (draft)", "D", 0)
	before := idx.NEntries()

	idx.AddDeparenthesized()

	// Both strip to "Score", which has the same tester either way: only
	// one clone may be appended, not one per source entry.
	if got, want := idx.NEntries(), before+1; got != want {
		t.Fatalf("NEntries() = %d, want %d (one clone, not one per colliding source entry)", got, want)
	}
}

func TestAddDeparenthesizedBracketedTail(t *testing.T) {
	idx := New()
	idx.AddPhrase("Paper [draft]", "P", 0)
	idx.AddDeparenthesized()

	if got := idx.FindAll("Paper", 0); len(got) != 1 || got[0] != "P" {
		t.Errorf(`FindAll("Paper") = %v, want [P]`, got)
	}
}

func TestAddDeparenthesizedSkipsKeywords(t *testing.T) {
	idx := New()
	idx.AddKeyword("notparens", "K", 0)
	before := idx.NEntries()
	idx.AddDeparenthesized()
	if idx.NEntries() != before {
		t.Fatalf("AddDeparenthesized should never touch keyword entries; NEntries = %d, want %d", idx.NEntries(), before)
	}
}
