package parsetype

import (
	"regexp"
	"testing"
)

func TestMakePattern(t *testing.T) {
	tests := []struct {
		name        string
		cardinality Cardinality
		pattern     string
		listsep     string
		want        string
	}{
		{"one_passthrough", CardinalityOne, `\d+`, ",", `\d+`},
		{"zero_or_one", CardinalityZeroOrOne, `\d+`, ",", `(\d+)?`},
		{"zero_or_more", CardinalityZeroOrMore, `\d+`, ",", `(\d+)?(\s*,\s*(\d+))*`},
		{"one_or_more", CardinalityOneOrMore, `\d+`, ",", `(\d+)(\s*,\s*(\d+))*`},
		{"one_or_more_semicolon", CardinalityOneOrMore, `\w+`, ";", `(\w+)(\s*;\s*(\w+))*`},
		{"zero_or_one_ignores_sep", CardinalityZeroOrOne, `\w+`, ";", `(\w+)?`},
		// Garbage in, garbage regex out: no validation of the inner pattern.
		{"no_validation", CardinalityZeroOrOne, `((`, ",", `((()?`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cardinality.MakePattern(tt.pattern, tt.listsep)
			if got != tt.want {
				t.Errorf("MakePattern(%q, %q) = %q, want %q", tt.pattern, tt.listsep, got, tt.want)
			}
		})
	}
}

func TestCardinalityString(t *testing.T) {
	tests := []struct {
		cardinality Cardinality
		want        string
	}{
		{CardinalityOne, "1"},
		{CardinalityZeroOrOne, "0..1"},
		{CardinalityZeroOrMore, "0..N"},
		{CardinalityOneOrMore, "1..N"},
		{Cardinality(42), "Cardinality(42)"},
	}

	for _, tt := range tests {
		if got := tt.cardinality.String(); got != tt.want {
			t.Errorf("Cardinality.String() = %q, want %q", got, tt.want)
		}
	}
}

// fullMatch plays the host engine role: anchor the generated fragment
// and match a candidate string against it.
func fullMatch(t *testing.T, pattern, text string) bool {
	t.Helper()
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		t.Fatalf("generated pattern %q does not compile: %v", pattern, err)
	}
	return re.MatchString(text)
}

func TestGeneratedPatternMatching(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		match   bool
	}{
		{"zero_or_one_empty", ZeroOrOnePattern(`\d+`), "", true},
		{"zero_or_one_single", ZeroOrOnePattern(`\d+`), "42", true},
		{"zero_or_one_no_list", ZeroOrOnePattern(`\d+`), "1,2", false},

		{"zero_or_more_empty", ZeroOrMorePattern(`\d+`, ","), "", true},
		{"zero_or_more_single", ZeroOrMorePattern(`\d+`, ","), "7", true},
		{"zero_or_more_list", ZeroOrMorePattern(`\d+`, ","), "1, 2, 3", true},
		{"zero_or_more_tight_list", ZeroOrMorePattern(`\d+`, ","), "1,2,3", true},
		{"zero_or_more_bad_item", ZeroOrMorePattern(`\d+`, ","), "1, x", false},

		{"one_or_more_empty", OneOrMorePattern(`\d+`, ","), "", false},
		{"one_or_more_single", OneOrMorePattern(`\d+`, ","), "7", true},
		{"one_or_more_list", OneOrMorePattern(`\d+`, ","), "1, 2, 3", true},
		{"one_or_more_spaced_sep", OneOrMorePattern(`\d+`, ","), "1 , 2", true},
		{"one_or_more_semicolon", OneOrMorePattern(`\d+`, ";"), "1; 2; 3", true},
		{"one_or_more_wrong_sep", OneOrMorePattern(`\d+`, ";"), "1, 2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fullMatch(t, tt.pattern, tt.text); got != tt.match {
				t.Errorf("pattern %q on %q: match = %v, want %v", tt.pattern, tt.text, got, tt.match)
			}
		})
	}
}
