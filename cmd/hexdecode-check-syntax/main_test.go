package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hexbug/hexdecode/pkg/common"
	"github.com/hexbug/hexdecode/pkg/hexast"
	"github.com/hexbug/hexdecode/pkg/hexdecode"
)

func decodedJSON(t *testing.T, text string) string {
	t.Helper()
	var iotas []hexast.Iota
	for i := range hexdecode.Parse(text).All() {
		iotas = append(iotas, i)
	}
	var buf bytes.Buffer
	if err := common.PrintASTJSON(hexast.UnitNode(iotas, ""), "  ", &buf, nil); err != nil {
		t.Fatalf("Failed to write JSON: %v", err)
	}
	return buf.String()
}

func TestRunAcceptsDecodedTree(t *testing.T) {
	var stdout, stderr bytes.Buffer
	input := decodedJSON(t, "[<ne, aqw>, (1, 2, 3), NULL] foo")
	code := run([]string{"--format", "text"}, strings.NewReader(input), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, stderr.String())
	}
	expected := "[HexPattern(NORTH_EAST aqw), (1, 2, 3), NULL]\nfoo\n"
	if stdout.String() != expected {
		t.Errorf("Expected %q, got %q", expected, stdout.String())
	}
}

func TestRunRejectsInvalidTree(t *testing.T) {
	input := `{"role": "unit", "children": [{"role": "pattern", "options": {"direction": "UP", "turns": "zz"}}]}`
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(input), &stdout, &stderr)
	if code != 1 {
		t.Errorf("Expected exit 1, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected no output for an invalid tree, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "unit/0:pattern") {
		t.Errorf("Expected the node path in the report, got %q", stderr.String())
	}
}

func TestRunRejectsBadJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, strings.NewReader("not json"), &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Error parsing JSON") {
		t.Errorf("Expected a JSON error, got %q", stderr.String())
	}
}
