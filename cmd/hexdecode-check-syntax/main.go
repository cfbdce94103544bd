package main

import (
	"fmt"
	"io"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/hexbug/hexdecode/pkg/checker"
	"github.com/hexbug/hexdecode/pkg/common"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `hexdecode-check-syntax - validation of decoded iota trees

This tool reads an iota tree (unit node) in JSON format, as written by
hexdecode --format JSON, and validates that every node obeys the rules the
decoder guarantees. If validation fails, it exits with a non-zero status;
otherwise it emits the tree unchanged to stdout.

Usage:
  hexdecode-check-syntax [options]

Options:
`

const DEFAULT_FORMAT = "JSON"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var showHelp, showVersion, debug bool
	var inputFile, outputFile, format string
	var trim int

	flags := pflag.NewFlagSet("hexdecode-check-syntax", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "%s\n", usage)
		flags.PrintDefaults()
	}

	flags.BoolVarP(&showHelp, "help", "h", false, "Show help")
	flags.BoolVar(&showVersion, "version", false, "Show version")
	flags.BoolVar(&debug, "debug", false, "Enable debug output to stderr")
	flags.StringVarP(&inputFile, "input", "i", "", "Input file (defaults to stdin)")
	flags.StringVarP(&outputFile, "output", "o", "", "Output file (defaults to stdout)")
	flags.StringVarP(&format, "format", "f", DEFAULT_FORMAT, "Output format (JSON, YAML, TEXT, etc.)")
	flags.IntVar(&trim, "trim", 0, "Trim values for display purposes")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	if showHelp {
		flags.Usage()
		return 0
	}

	if showVersion {
		fmt.Fprintf(stdout, "hexdecode-check-syntax version %s\n", Version)
		return 0
	}

	// Reject any positional arguments.
	if len(flags.Args()) > 0 {
		fmt.Fprintf(stderr, "Error: Unexpected positional arguments. Use --input and --output flags instead.\n\n")
		flags.Usage()
		return 1
	}

	logger := common.NewLogger(stderr, debug, "text")

	printFunc, err := common.PickPrintFunc(format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Determine input source.
	input := stdin
	if inputFile != "" {
		file, err := os.Open(inputFile) // #nosec G304 - CLI tool reads user-specified input files
		if err != nil {
			fmt.Fprintf(stderr, "Error opening input file: %v\n", err)
			return 1
		}
		defer file.Close()
		input = file
	}

	tree, err := common.ReadASTJSON(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing JSON: %v\n", err)
		return 1
	}

	c := checker.NewChecker()
	if !c.Check(tree) {
		logger.WithField("bugs", len(c.Bugs)).WithField("issues", len(c.Issues)).Debug("validation failed")
		c.ReportErrors(stderr)
		return 1
	}
	logger.Debug("validation passed")

	// Determine output destination.
	output := stdout
	if outputFile != "" {
		file, err := os.Create(outputFile) // #nosec G304 - CLI tool writes to user-specified output files
		if err != nil {
			fmt.Fprintf(stderr, "Error creating output file: %v\n", err)
			return 1
		}
		defer file.Close()
		output = file
	}

	options := common.DefaultPrintOptions()
	options.TrimTokenOnOutput = trim
	if err := printFunc(tree, options.IndentString(), output, options); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}
