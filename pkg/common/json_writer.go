package common

import (
	"encoding/json"
	"io"
)

func PrintASTJSON(root *Node, indentDelta string, output io.Writer, options *PrintOptions) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", indentDelta)
	return encoder.Encode(trimmed(root, options))
}

func ReadASTJSON(input io.Reader) (*Node, error) {
	var root Node
	decoder := json.NewDecoder(input)
	err := decoder.Decode(&root)
	if err != nil {
		return nil, err
	}
	return &root, nil
}

// trimmed returns a copy of the tree with option values shortened for display.
// The tree is returned as is when trimming is disabled.
func trimmed(n *Node, options *PrintOptions) *Node {
	if n == nil || options == nil || options.TrimTokenOnOutput <= 0 {
		return n
	}
	copied := &Node{Name: n.Name}
	if n.Options != nil {
		copied.Options = make(map[string]string, len(n.Options))
		for key, value := range n.Options {
			copied.Options[key] = TrimValue(key, value, options.TrimTokenOnOutput)
		}
	}
	for _, child := range n.Children {
		copied.Children = append(copied.Children, trimmed(child, options))
	}
	return copied
}
