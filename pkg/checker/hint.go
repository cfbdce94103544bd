package checker

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/hexbug/hexdecode/pkg/hexast"
)

const maxDistanceForHint = 3

// closestDirections returns the direction names nearest to code, or nothing
// when every name is further than maxDistanceForHint edits away.
func closestDirections(code string) []string {
	code = strings.ToUpper(code)
	minDistance := maxDistanceForHint
	closest := []string{}
	for d := range hexast.Directions() {
		name := d.String()
		dist := levenshtein.ComputeDistance(code, name)
		switch {
		case dist < minDistance:
			closest = []string{name}
			minDistance = dist
		case dist == minDistance:
			closest = append(closest, name)
		}
	}
	slices.Sort(closest)
	return closest
}

func withHint(message string, candidates []string) string {
	if len(candidates) == 0 {
		return message
	}
	return fmt.Sprintf("%s (did you mean %s?)", message, strings.Join(candidates, " or "))
}
