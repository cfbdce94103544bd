package main

import (
	"fmt"
	"io"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/hexbug/hexdecode/pkg/hexdecode"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `hexdecode-normalize - expand angle-bracket pattern shorthand

This tool rewrites every <direction, turns> shorthand in its input into the
verbose HexPattern(direction turns) form and copies everything else through
unchanged.

Usage:
  hexdecode-normalize [options]

Options:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var showHelp, showVersion bool
	var inputFile, outputFile string

	flags := pflag.NewFlagSet("hexdecode-normalize", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "%s\n", usage)
		flags.PrintDefaults()
	}

	flags.BoolVarP(&showHelp, "help", "h", false, "Show help")
	flags.BoolVar(&showVersion, "version", false, "Show version")
	flags.StringVarP(&inputFile, "input", "i", "", "Input file (defaults to stdin)")
	flags.StringVarP(&outputFile, "output", "o", "", "Output file (defaults to stdout)")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	if showHelp {
		flags.Usage()
		return 0
	}

	if showVersion {
		fmt.Fprintf(stdout, "hexdecode-normalize version %s\n", Version)
		return 0
	}

	if len(flags.Args()) > 0 {
		fmt.Fprintf(stderr, "Error: Unexpected positional arguments. Use --input and --output flags instead.\n\n")
		flags.Usage()
		return 1
	}

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

	inputBytes, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return 1
	}

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

	if _, err := io.WriteString(output, hexdecode.Normalize(string(inputBytes))); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}
