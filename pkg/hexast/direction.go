package hexast

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Direction is one of the six compass directions of the hex grid, in
// clockwise order starting from north-east.
type Direction int

const (
	NorthEast Direction = iota
	East
	SouthEast
	SouthWest
	West
	NorthWest
)

var ErrUnknownDirection = errors.New("unknown direction")

var directionNames = [...]string{
	NorthEast: "NORTH_EAST",
	East:      "EAST",
	SouthEast: "SOUTH_EAST",
	SouthWest: "SOUTH_WEST",
	West:      "WEST",
	NorthWest: "NORTH_WEST",
}

var directionShorthands = [...]string{
	NorthEast: "ne",
	East:      "e",
	SouthEast: "se",
	SouthWest: "sw",
	West:      "w",
	NorthWest: "nw",
}

// Codes are lowercased, stripped of '_' and '-', and the compass words are
// shortened to their initials, so "NORTH_EAST", "north-east", "neast" and "ne"
// all reach the same entry.
var shorthandToDirection = map[string]Direction{
	"ne": NorthEast,
	"e":  East,
	"se": SouthEast,
	"sw": SouthWest,
	"w":  West,
	"nw": NorthWest,
}

var separators = strings.NewReplacer("_", "", "-", "")

var compassWords = strings.NewReplacer("north", "n", "south", "s", "east", "e", "west", "w")

// FromShorthand decodes a case-insensitive compass code. After normalization
// the code must be exactly one of the six short codes.
func FromShorthand(code string) (Direction, error) {
	key := compassWords.Replace(separators.Replace(strings.ToLower(code)))
	d, ok := shorthandToDirection[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, code)
	}
	return d, nil
}

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool {
	return d >= NorthEast && d <= NorthWest
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Shorthand returns the short compass code, e.g. "ne".
func (d Direction) Shorthand() string {
	if !d.Valid() {
		return ""
	}
	return directionShorthands[d]
}

// Directions yields the six directions in clockwise order.
func Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for d := NorthEast; d <= NorthWest; d++ {
			if !yield(d) {
				return
			}
		}
	}
}
