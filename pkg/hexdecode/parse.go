// Package hexdecode reads iotas out of free-form text. Both the verbose form
// (HexPattern(ne qaq), (1, 2, 3), [NULL, foo]) and the angle-bracket shorthand
// (<ne, qaq>) are understood.
package hexdecode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hexbug/hexdecode/pkg/hexast"
)

var ErrUnparseable = errors.New("unparseable input")

// Result is the outcome of one decode. On failure Iotas is empty and Err
// records why; callers that only want the iotas should use Stream.
type Result struct {
	Normalized string
	Iotas      []hexast.Iota
	Err        error
}

// OK reports whether the text conformed to the grammar.
func (r Result) OK() bool {
	return r.Err == nil
}

// Stream returns the decoded iotas as a fresh stream. A failed decode gives an
// empty stream, indistinguishable from text with no iotas in it.
func (r Result) Stream() *Stream {
	if r.Err != nil {
		return newStream(nil)
	}
	iotas := make([]hexast.Iota, len(r.Iotas))
	copy(iotas, r.Iotas)
	return newStream(iotas)
}

// Decode normalizes the shorthand, parses the text and builds the iotas. The
// whole text must conform; there are no partial results.
func Decode(text string) Result {
	normalized := Normalize(text)
	result := Result{Normalized: normalized}
	if strings.TrimSpace(normalized) == "" {
		result.Iotas = []hexast.Iota{}
		return result
	}

	tree, err := iotaParser.ParseString("", normalized)
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrUnparseable, err)
		return result
	}
	iotas, err := toAST(tree)
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrUnparseable, err)
		return result
	}
	result.Iotas = iotas
	return result
}

// Parse returns the iotas found in text, or an empty stream if the text does
// not parse.
func Parse(text string) *Stream {
	return Decode(text).Stream()
}
