package common

import (
	"fmt"
	"io"
	"strings"
)

// PrintASTText writes each top-level iota on its own line in the verbose
// notation, so the output can be fed back to the parser.
func PrintASTText(root *Node, indentDelta string, output io.Writer, options *PrintOptions) error {
	trim := 0
	if options != nil {
		trim = options.TrimTokenOnOutput
	}
	var sb strings.Builder
	for _, child := range root.Children {
		writeText(child, &sb, trim)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(output, sb.String())
	return err
}

func writeText(n *Node, sb *strings.Builder, trim int) {
	switch n.Name {
	case NameNumber, NameUnknown:
		sb.WriteString(TrimValue(OptionValue, n.Options[OptionValue], trim))
	case NameNull:
		sb.WriteString("NULL")
	case NameVector:
		writeTextSeq(n.Children, "(", ")", sb, trim)
	case NameList:
		writeTextSeq(n.Children, "[", "]", sb, trim)
	case NamePattern:
		sb.WriteString("HexPattern(")
		sb.WriteString(n.Options[OptionDirection])
		if turns := n.Options[OptionTurns]; turns != "" {
			sb.WriteByte(' ')
			sb.WriteString(turns)
		}
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "<%s>", n.Name)
	}
}

func writeTextSeq(children []*Node, open, closer string, sb *strings.Builder, trim int) {
	sb.WriteString(open)
	for i, child := range children {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeText(child, sb, trim)
	}
	sb.WriteString(closer)
}
