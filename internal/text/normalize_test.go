package text

import "testing"

func TestDedash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"hyphen run", "foo-bar", "foo bar"},
		{"underscore run", "foo_bar_baz", "foo bar baz"},
		{"mixed dashes", "foo--bar__baz..qux", "foo bar baz qux"},
		{"en dash", "foo–bar", "foo bar"},
		{"em dash", "foo—bar", "foo bar"},
		{"already spaced", "foo bar", "foo bar"},
		{"empty", "", ""},
		{"only dashes", "---", " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dedash(tt.input); got != tt.expected {
				t.Errorf("Dedash(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDeaccent(t *testing.T) {
	tests := []struct{ input, expected string }{
		{"café", "cafe"},
		{"naïve", "naive"},
		{"Düsseldorf", "Dusseldorf"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Deaccent(tt.input); got != tt.expected {
			t.Errorf("Deaccent(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSimplifyWhitespace(t *testing.T) {
	tests := []struct{ input, expected string }{
		{"  foo   bar  ", "foo bar"},
		{"foo\tbar\nbaz", "foo bar baz"},
		{"foo", "foo"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := SimplifyWhitespace(tt.input); got != tt.expected {
			t.Errorf("SimplifyWhitespace(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsCamelWord(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"R1", true},
		{"FooBar", true},
		{"OveMer", true},
		{"plain", false},
		{"ALLCAPS", false},
		{"100", false},
		{"R100", true},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsCamelWord(tt.input); got != tt.expected {
			t.Errorf("IsCamelWord(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsStrictCamelWord(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"FooBar", true},
		{"HTTPServer", true},
		{"R1", false},   // letter-digit only, no lower->upper or UUl
		{"ALLCAPS", false},
		{"plain", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsStrictCamelWord(tt.input); got != tt.expected {
			t.Errorf("IsStrictCamelWord(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestMakeXTester(t *testing.T) {
	tests := []struct{ input, expected string }{
		{"Overall merit", " overall merit"},
		{"R1 Score", " r1 score"},
		{`"quoted" [bracketed]`, " quoted bracketed"},
		{"foo_bar", " foo _bar"},
		{"_private", " _private"},
		{"what?!", " what ? !"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := MakeXTester(tt.input); got != tt.expected {
			t.Errorf("MakeXTester(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestXTesterRemoveStops(t *testing.T) {
	tests := []struct{ input, expected string }{
		{" a study of the new systems", " study systems"},
		{" overall merit", " overall merit"},
		{" the", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := XTesterRemoveStops(tt.input); got != tt.expected {
			t.Errorf("XTesterRemoveStops(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsStopWord(t *testing.T) {
	if !IsStopWord("The") {
		t.Error("The should be a stop word (case-insensitive)")
	}
	if IsStopWord("systems") {
		t.Error("systems should not be a stop word")
	}
}
