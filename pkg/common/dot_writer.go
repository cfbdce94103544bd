package common

import (
	"fmt"
	"io"
	"strings"
)

func PrintASTDOT(root *Node, indentDelta string, output io.Writer, options *PrintOptions) error {
	var sb strings.Builder

	// Initialize the DOT graph
	sb.WriteString("digraph G {\n")
	sb.WriteString("  bgcolor=\"transparent\";\n")
	sb.WriteString("  node [shape=\"box\", style=\"filled\", fontname=\"Ubuntu Mono\"];\n")

	counter := 0
	printNodeDOT(root, "", &sb, options, &counter)

	sb.WriteString("}\n")
	_, err := io.WriteString(output, sb.String())
	return err
}

func printNodeDOT(node *Node, parentID string, sb *strings.Builder, options *PrintOptions, counter *int) {
	// Sequential identifiers keep the output stable between runs.
	nodeID := fmt.Sprintf("node_%d", *counter)
	*counter++

	trim := 0
	if options != nil {
		trim = options.TrimTokenOnOutput
	}

	label := node.Name
	if value, exists := node.Options[OptionValue]; exists {
		label = fmt.Sprintf("%s: %s", node.Name, escapeDOTValue(TrimValue(OptionValue, value, trim)))
	} else if direction, exists := node.Options[OptionDirection]; exists {
		label = fmt.Sprintf("%s: %s %s", node.Name, escapeDOTValue(direction), escapeDOTValue(node.Options[OptionTurns]))
	}

	fillColor := tagColors[node.Name]
	if fillColor == "" {
		fillColor = "lightgray"
	}

	fmt.Fprintf(sb, "  \"%s\" [label=\"%s\", shape=\"box\", fillcolor=\"%s\"];\n", nodeID, label, fillColor)

	if parentID != "" {
		fmt.Fprintf(sb, "  \"%s\" -> \"%s\";\n", parentID, nodeID)
	}

	for _, child := range node.Children {
		printNodeDOT(child, nodeID, sb, options, counter)
	}
}

func escapeDOTValue(value string) string {
	return strings.ReplaceAll(value, `"`, `\"`)
}

var tagColors = map[string]string{
	"unit":    "lightpink",
	"list":    "PaleTurquoise",
	"vector":  "lightgreen",
	"pattern": "#C0FFC0",
	"unknown": "Honeydew",
	"null":    "#FFD8E1",
	"number":  "lightgoldenrodyellow",
}
