package index

import (
	"strings"
	"testing"
)

func TestEnsureEntryKeywordCamelSynthesis(t *testing.T) {
	idx := New()
	h := idx.AddPhrase("A Study of the New Systems", "S", 0)

	kw := idx.EnsureEntryKeyword(h, Camel, 0)
	if strings.ContainsAny(kw, " \t\n") {
		t.Fatalf("synthesized CAMEL keyword %q contains whitespace", kw)
	}
	v, ok := idx.Find1(kw, 0)
	if !ok || v != "S" {
		t.Fatalf("Find1(%q) = (%v, %v), want (S, true)", kw, v, ok)
	}

	again := idx.EnsureEntryKeyword(h, Camel, 0)
	if again != kw {
		t.Fatalf("EnsureEntryKeyword is not idempotent: %q then %q", kw, again)
	}
}

func TestEnsureEntryKeywordCollisionInstallsSuffixedAlias(t *testing.T) {
	idx := New()
	h1 := idx.AddPhrase("Review Status", "first", 0)
	kw1 := idx.EnsureEntryKeyword(h1, Camel, 0)

	h2 := idx.AddPhrase("Review Statistics", "second", 0)
	before := idx.NEntries()
	kw2 := idx.EnsureEntryKeyword(h2, Camel, 0)

	if kw1 != "RevSta" {
		t.Fatalf("expected the first synthesis to win the natural form RevSta, got %q", kw1)
	}
	if kw1 == kw2 {
		t.Fatalf("both entries synthesized the same keyword %q", kw1)
	}
	if idx.NEntries() <= before {
		t.Fatalf("expected the second, colliding synthesis to install an alias entry")
	}
	v, ok := idx.Find1(kw2, 0)
	if !ok || v != "second" {
		t.Fatalf("Find1(%q) = (%v, %v), want (second, true)", kw2, v, ok)
	}
}

func TestKeywordDashAndUnderscoreShapes(t *testing.T) {
	idx := New()
	h := idx.AddPhrase("Overall merit", "A", 0)

	dash, ok := idx.FindEntryKeyword(h, Dash, 0)
	if !ok {
		t.Fatal("FindEntryKeyword(Dash) found nothing")
	}
	for _, r := range dash {
		if !(r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			t.Fatalf("DASH keyword %q contains disallowed rune %q", dash, r)
		}
	}

	underscore, ok := idx.FindEntryKeyword(h, Underscore, 0)
	if !ok {
		t.Fatal("FindEntryKeyword(Underscore) found nothing")
	}
	for _, r := range underscore {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			t.Fatalf("UNDERSCORE keyword %q contains disallowed rune %q", underscore, r)
		}
	}
}
