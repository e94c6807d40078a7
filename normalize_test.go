package spellkit

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "HELLO", "hello"},
		{"strips internal whitespace", "new york", "newyork"},
		{"strips leading/trailing whitespace", "  hello  ", "hello"},
		{"strips tabs and newlines", "a\tb\nc", "abc"},
		{"compatibility decomposes ligature", "ﬁsh", "fish"},
		{"empty string stays empty", "", ""},
		{"pure whitespace becomes empty", "   \t\n", ""},
		{"mixed case with punctuation kept", "O'Brien", "o'brien"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Hello World", "CDK10", "  spaced  ", "ﬁsh"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
