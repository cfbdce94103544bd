package checker

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hexbug/hexdecode/pkg/common"
)

func TestClosestDirections(t *testing.T) {
	tests := []struct {
		code     string
		expected []string
	}{
		{"NORHT_EAST", []string{"NORTH_EAST"}},
		{"south_wst", []string{"SOUTH_WEST"}},
		{"NORTH", []string{}},
		{"UP", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, closestDirections(tt.code)); diff != "" {
				t.Errorf("closestDirections(%q) mismatch (-want +got):\n%s", tt.code, diff)
			}
		})
	}
}

func TestPatternIssueCarriesHint(t *testing.T) {
	c := NewChecker()
	c.Check(unit(&common.Node{Name: common.NamePattern, Options: map[string]string{
		common.OptionDirection: "NORHT_EAST",
		common.OptionTurns:     "qaq",
	}}))
	if len(c.Issues) != 1 {
		t.Fatalf("Expected one issue, got %v", c.Issues)
	}
	if !strings.Contains(c.Issues[0].Message, "did you mean NORTH_EAST?") {
		t.Errorf("Expected a hint, got %q", c.Issues[0].Message)
	}
}
