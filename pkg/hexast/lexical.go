package hexast

import (
	"regexp"
	"strings"
)

// Lexical classes shared by the grammar and the tree checker.
const (
	NumberPattern   = `[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`
	BarewordPattern = `[A-Za-z_][A-Za-z0-9_]*`
	TurnAlphabet    = "aqwed"

	// HyphenatedPattern joins barewords with single hyphens, e.g. "north-east".
	// It is only accepted as a pattern direction.
	HyphenatedPattern = BarewordPattern + `(?:-` + BarewordPattern + `)+`
)

var (
	numberLiteral   = regexp.MustCompile(`^` + NumberPattern + `$`)
	barewordLiteral = regexp.MustCompile(`^` + BarewordPattern + `$`)
)

// ValidNumber reports whether text is a complete number literal.
func ValidNumber(text string) bool {
	return numberLiteral.MatchString(text)
}

// ValidBareword reports whether text is a complete bareword.
func ValidBareword(text string) bool {
	return barewordLiteral.MatchString(text)
}

// ValidTurns reports whether turns only uses the lower-case turn letters. The
// empty sequence is valid.
func ValidTurns(turns string) bool {
	for _, r := range turns {
		if !strings.ContainsRune(TurnAlphabet, r) {
			return false
		}
	}
	return true
}
