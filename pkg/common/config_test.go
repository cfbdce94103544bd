package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrintOptions(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "options.yaml")
	content := "option-format: JSON\noption-trim-token-on-output: 12\n"
	if err := os.WriteFile(filename, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write options file: %v", err)
	}

	options, err := LoadPrintOptions(filename)
	if err != nil {
		t.Fatalf("LoadPrintOptions failed: %v", err)
	}
	if options.Format != "JSON" {
		t.Errorf("Expected format JSON, got %q", options.Format)
	}
	if options.TrimTokenOnOutput != 12 {
		t.Errorf("Expected trim 12, got %d", options.TrimTokenOnOutput)
	}
	// Not in the file, so the default survives.
	if options.Indent != DefaultIndent {
		t.Errorf("Expected default indent %d, got %d", DefaultIndent, options.Indent)
	}
}

func TestLoadPrintOptionsErrors(t *testing.T) {
	if _, err := LoadPrintOptions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}

	filename := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(filename, []byte("option-indent: [not, a, number]\n"), 0o600); err != nil {
		t.Fatalf("Failed to write options file: %v", err)
	}
	if _, err := LoadPrintOptions(filename); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}

func TestIndentString(t *testing.T) {
	if got := (&PrintOptions{Indent: 4}).IndentString(); got != "    " {
		t.Errorf("Expected four spaces, got %q", got)
	}
	if got := (&PrintOptions{}).IndentString(); got != "  " {
		t.Errorf("Expected two spaces by default, got %q", got)
	}
	var nilOptions *PrintOptions
	if got := nilOptions.IndentString(); got != "  " {
		t.Errorf("Expected two spaces for nil options, got %q", got)
	}
}
