package common

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Node is the display tree handed to the writers. Iotas are converted into
// nodes so that every output format shares one traversal shape.
type Node struct {
	Name     string            `json:"role" yaml:"role"`                           // The name of the node
	Options  map[string]string `json:"options,omitempty" yaml:"options,omitempty"` // Attributes (name-value pairs)
	Children []*Node           `json:"children,omitempty" yaml:"children,omitempty"`
}

const NameUnit = "unit"
const NameNumber = "number"
const NameVector = "vector"
const NameNull = "null"
const NameUnknown = "unknown"
const NamePattern = "pattern"
const NameList = "list"

const OptionValue = "value"
const OptionDirection = "direction"
const OptionTurns = "turns"
const OptionSrc = "src"

var ErrUnknownFormat = errors.New("unknown format")

// PrintFunc writes a tree rooted at a unit node to output.
type PrintFunc func(root *Node, indentDelta string, output io.Writer, options *PrintOptions) error

// NewUnit returns an empty root node, annotated with its origin when src is
// not blank.
func NewUnit(src string) *Node {
	unit := &Node{
		Name:     NameUnit,
		Options:  map[string]string{},
		Children: []*Node{},
	}
	if src != "" {
		unit.Options[OptionSrc] = src
	}
	return unit
}

// TrimValue trims a value if it's a token value and trimming is enabled
func TrimValue(key, value string, trimLength int) string {
	if key == OptionValue && trimLength > 0 && len(value) > trimLength {
		// Reserve space for Unicode ellipsis (1 character: "…")
		if trimLength >= 2 {
			return value[:trimLength-1] + "…"
		}
		return value[:trimLength]
	}
	return value
}

func PickPrintFunc(format string) (PrintFunc, error) {
	switch strings.ToUpper(format) {
	case "JSON":
		return PrintASTJSON, nil
	case "YAML":
		return PrintASTYAML, nil
	case "ASCIITREE":
		return PrintASTAsciiTree, nil
	case "DOT":
		return PrintASTDOT, nil
	case "TEXT":
		return PrintASTText, nil
	case "TABLE":
		return PrintASTTable, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Walk visits n and then its descendants, depth first.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}
