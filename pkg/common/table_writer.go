package common

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// PrintASTTable writes one row per top-level iota: its position, its role and
// its verbose notation.
func PrintASTTable(root *Node, indentDelta string, output io.Writer, options *PrintOptions) error {
	trim := 0
	if options != nil {
		trim = options.TrimTokenOnOutput
	}
	table := tablewriter.NewWriter(output)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "role", "iota"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	for n, child := range root.Children {
		var sb strings.Builder
		writeText(child, &sb, trim)
		table.Append([]string{strconv.Itoa(n), child.Name, sb.String()})
	}
	table.Render()
	return nil
}
