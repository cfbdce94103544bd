package common

import (
	"io"

	"gopkg.in/yaml.v3"
)

func PrintASTYAML(root *Node, indentDelta string, output io.Writer, options *PrintOptions) error {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(len(indentDelta))
	if err := encoder.Encode(trimmed(root, options)); err != nil {
		return err
	}
	return encoder.Close()
}
