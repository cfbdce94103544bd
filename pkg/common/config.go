package common

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFormat = "TEXT"
const DefaultIndent = 2

type PrintOptions struct {
	Format            string `yaml:"option-format,omitempty"`
	Indent            int    `yaml:"option-indent,omitempty"`
	TrimTokenOnOutput int    `yaml:"option-trim-token-on-output,omitempty"`
	SrcPath           string `yaml:"option-src-path,omitempty"`
}

// DefaultPrintOptions returns the options used when no file is given.
func DefaultPrintOptions() *PrintOptions {
	return &PrintOptions{
		Format: DefaultFormat,
		Indent: DefaultIndent,
	}
}

// LoadPrintOptions loads print options from a YAML file. Fields missing from
// the file keep their default values.
func LoadPrintOptions(filename string) (*PrintOptions, error) {
	data, err := os.ReadFile(filename) // #nosec G304 - CLI tool reads user-specified config files
	if err != nil {
		return nil, fmt.Errorf("failed to read options file '%s': %w", filename, err)
	}

	options := DefaultPrintOptions()
	if err := yaml.Unmarshal(data, options); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in options file '%s': %w", filename, err)
	}
	return options, nil
}

// IndentString returns the indentation unit used by the indenting writers.
func (o *PrintOptions) IndentString() string {
	if o == nil || o.Indent <= 0 {
		return "  "
	}
	return fmt.Sprintf("%*s", o.Indent, "")
}
