package checker

import (
	"fmt"
	"io"

	"github.com/hexbug/hexdecode/pkg/common"
	"github.com/hexbug/hexdecode/pkg/hexast"
)

type Bug struct {
	Message string
	Path    string
}

type Issue struct {
	Message string
	Path    string
}

// Checker validates an iota tree, typically one read back from JSON, against
// the invariants the decoder guarantees.
type Checker struct {
	Bugs   []Bug   // Structural faults the decoder can never produce.
	Issues []Issue // Well-formed nodes carrying invalid values.
}

// NewChecker creates a new checker instance.
func NewChecker() *Checker {
	return &Checker{
		Bugs:   []Bug{},
		Issues: []Issue{},
	}
}

func (c *Checker) ReportErrors(output io.Writer) {
	// First report any bugs and then move onto issues.
	if len(c.Bugs) > 0 {
		fmt.Fprintln(output, "Malformed tree; it cannot have come from the decoder:")
		for n, bug := range c.Bugs {
			fmt.Fprintf(output, "  [%d]. %s, at %s\n", n+1, bug.Message, bug.Path)
		}
	}
	if len(c.Issues) > 0 {
		fmt.Fprintln(output, "Invalid values found in the tree:")
		for n, issue := range c.Issues {
			fmt.Fprintf(output, "  [%d]. %s, at %s\n", n+1, issue.Message, issue.Path)
		}
	}
}

// Check validates the tree rooted at node, which must be a unit node.
func (c *Checker) Check(node *common.Node) bool {
	if node == nil {
		c.addBug("invalid node: nil", "")
		return false
	}

	if node.Name != common.NameUnit {
		c.addIssue("expected unit node as root", node.Name)
		return false
	}

	c.validateChildren(node, node.Name)

	return len(c.Issues) == 0 && len(c.Bugs) == 0
}

func (c *Checker) validateChildren(node *common.Node, path string) {
	for n, child := range node.Children {
		c.validate(child, fmt.Sprintf("%s/%d", path, n))
	}
}

func (c *Checker) validate(node *common.Node, path string) {
	if node == nil {
		c.addBug("invalid node: nil", path)
		return
	}
	path = path + ":" + node.Name

	switch node.Name {
	case common.NameNumber:
		c.validateNumber(node, path)
	case common.NameVector:
		c.validateVector(node, path)
	case common.NameNull:
		c.factArity(0, node, path)
	case common.NameUnknown:
		c.validateUnknown(node, path)
	case common.NamePattern:
		c.validatePattern(node, path)
	case common.NameList:
		c.validateChildren(node, path)
	default:
		c.addBug(fmt.Sprintf("unexpected node type: %s", node.Name), path)
	}
}

func (c *Checker) validateNumber(node *common.Node, path string) {
	c.factArity(0, node, path)
	value, ok := node.Options[common.OptionValue]
	if !ok {
		c.addBug("number node missing value option", path)
		return
	}
	if !hexast.ValidNumber(value) {
		c.addIssue(fmt.Sprintf("invalid number literal: %q", value), path)
	}
}

func (c *Checker) validateVector(node *common.Node, path string) {
	if !c.factArity(3, node, path) {
		return
	}
	for n, child := range node.Children {
		childPath := fmt.Sprintf("%s/%d", path, n)
		if child == nil || child.Name != common.NameNumber {
			c.addBug("vector components must be number nodes", childPath)
			continue
		}
		c.validateNumber(child, childPath+":"+child.Name)
	}
}

func (c *Checker) validateUnknown(node *common.Node, path string) {
	c.factArity(0, node, path)
	value, ok := node.Options[common.OptionValue]
	if !ok {
		c.addBug("unknown node missing value option", path)
		return
	}
	if !hexast.ValidBareword(value) {
		c.addIssue(fmt.Sprintf("invalid bareword: %q", value), path)
	}
}

func (c *Checker) validatePattern(node *common.Node, path string) {
	c.factArity(0, node, path)
	direction, ok := node.Options[common.OptionDirection]
	if !ok {
		c.addBug("pattern node missing direction option", path)
	} else if _, err := hexast.FromShorthand(direction); err != nil {
		c.addIssue(withHint(err.Error(), closestDirections(direction)), path)
	}
	if !hexast.ValidTurns(node.Options[common.OptionTurns]) {
		c.addIssue(fmt.Sprintf("invalid turn sequence: %q", node.Options[common.OptionTurns]), path)
	}
}

func (c *Checker) factArity(arity int, node *common.Node, path string) bool {
	if len(node.Children) != arity {
		c.addBug(fmt.Sprintf("expected %d children, got %d", arity, len(node.Children)), path)
		return false
	}
	return true
}

// We add a bug if the decoder is supposed to guarantee the condition
// but it is violated.
func (c *Checker) addBug(message string, path string) {
	c.Bugs = append(c.Bugs, Bug{Message: message, Path: path})
}

// We add an issue if the tree has the right shape but holds a value the
// decoder would never accept.
func (c *Checker) addIssue(message string, path string) {
	c.Issues = append(c.Issues, Issue{Message: message, Path: path})
}
