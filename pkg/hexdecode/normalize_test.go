package hexdecode

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<ne, aqw>", "HexPattern(ne aqw)"},
		{"<ne,aqw>", "HexPattern(ne aqw)"},
		{"<ne aqw>", "HexPattern(ne aqw)"},
		{"< ne ,  aqw >", "HexPattern(ne aqw)"},
		{"<w>", "HexPattern(w )"},
		{"<NORTH_EAST, QAQ>", "HexPattern(NORTH_EAST QAQ)"},
		{"<south-west, dd>", "HexPattern(south-west dd)"},
		{"[<e>, <se, a>]", "[HexPattern(e ), HexPattern(se a)]"},
		{"line one <e>\nline two <w, q>", "line one HexPattern(e )\nline two HexPattern(w q)"},
		// Not shorthand: left untouched.
		{"<ne, xyz>", "<ne, xyz>"},
		{"<1, aqw>", "<1, aqw>"},
		{"a <b, c", "a <b, c"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIsIdentityOnVerboseText(t *testing.T) {
	inputs := []string{
		"",
		"HexPattern(ne aqw)",
		"[1, (1, 2, 3), NULL, HexPattern(w)]",
		"plain chat text with no shorthand",
	}
	for _, input := range inputs {
		if got := Normalize(input); got != input {
			t.Errorf("Normalize(%q) = %q, expected no change", input, got)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	input := "[<ne, aqw>, <w>, 3]"
	once := Normalize(input)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Expected a second pass to change nothing, got %q then %q", once, twice)
	}
}
