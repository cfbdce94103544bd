package hexdecode

import "regexp"

// shorthandPattern matches the angle-bracket form, e.g. "<ne, aqw>" or "<w>".
var shorthandPattern = regexp.MustCompile(`(?im)<\s*(?P<direction>[a-z_-]+)(?:\s*[, ]\s*(?P<turns>[aqwed]+))?\s*>`)

// Normalize rewrites every angle-bracket shorthand into the verbose
// HexPattern(direction turns) form. Both groups are copied verbatim; anything
// that does not match is left alone.
func Normalize(text string) string {
	return shorthandPattern.ReplaceAllString(text, "HexPattern(${direction} ${turns})")
}
