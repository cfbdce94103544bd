package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	pflag "github.com/spf13/pflag"

	"github.com/hexbug/hexdecode/pkg/common"
	"github.com/hexbug/hexdecode/pkg/hexast"
	"github.com/hexbug/hexdecode/pkg/hexdecode"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `hexdecode - read iotas out of free-form text

This tool reads text (for example a chat message) that describes iotas in
either the verbose form, e.g. HexPattern(NORTH_EAST qaq), [1, (0, 1, 0), NULL],
or the angle-bracket shorthand, e.g. <ne, qaq>, and prints the decoded iotas.
Text that does not parse produces no iotas.

Usage:
  hexdecode [options]

Options:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var showHelp, showVersion, debug, strict bool
	var inputFile, outputFile, configFile, format, srcPath, logFormat string
	var trim, indent int

	flags := pflag.NewFlagSet("hexdecode", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "%s\n", usage)
		flags.PrintDefaults()
	}

	flags.BoolVarP(&showHelp, "help", "h", false, "Show help")
	flags.BoolVar(&showVersion, "version", false, "Show version")
	flags.BoolVar(&debug, "debug", false, "Enable debug output to stderr")
	flags.BoolVar(&strict, "strict", false, "Exit with an error when non-blank input does not parse")
	flags.StringVarP(&inputFile, "input", "i", "", "Input file (defaults to stdin)")
	flags.StringVarP(&outputFile, "output", "o", "", "Output file (defaults to stdout)")
	flags.StringVar(&configFile, "config", "", "YAML file containing print options (optional)")
	flags.StringVarP(&format, "format", "f", common.DefaultFormat, "Output format (TEXT, JSON, YAML, ASCIITREE, DOT, TABLE)")
	flags.StringVar(&srcPath, "src-path", "", "Source path to annotate the unit with origin")
	flags.StringVar(&logFormat, "log-format", "text", "Diagnostics format (text, json)")
	flags.IntVar(&trim, "trim", 0, "Trim values for display purposes")
	flags.IntVar(&indent, "indent", common.DefaultIndent, "Indentation for JSON and YAML output")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	if showHelp {
		flags.Usage()
		return 0
	}

	if showVersion {
		fmt.Fprintf(stdout, "hexdecode version %s\n", Version)
		return 0
	}

	// Reject any positional arguments.
	if len(flags.Args()) > 0 {
		fmt.Fprintf(stderr, "Error: Unexpected positional arguments. Use --input and --output flags instead.\n\n")
		flags.Usage()
		return 1
	}

	logger := common.NewLogger(stderr, debug, logFormat)

	options := common.DefaultPrintOptions()
	if configFile != "" {
		loaded, err := common.LoadPrintOptions(configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading options: %v\n", err)
			return 1
		}
		options = loaded
	}
	// Flags given explicitly win over the options file.
	if flags.Changed("format") || configFile == "" {
		options.Format = format
	}
	if flags.Changed("trim") {
		options.TrimTokenOnOutput = trim
	}
	if flags.Changed("indent") {
		options.Indent = indent
	}
	if flags.Changed("src-path") {
		options.SrcPath = srcPath
	}

	printFunc, err := common.PickPrintFunc(options.Format)
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
		if options.SrcPath == "" {
			options.SrcPath = inputFile
		}
	}

	inputBytes, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return 1
	}
	text := string(inputBytes)

	result := hexdecode.Decode(text)
	logger.WithField("normalized", result.Normalized).Debug("normalized shorthand")
	if !result.OK() {
		logger.WithError(result.Err).Debug("input did not parse, no iotas produced")
		if strict && strings.TrimSpace(text) != "" {
			fmt.Fprintf(stderr, "Error: %v\n", result.Err)
			return 1
		}
	}

	var iotas []hexast.Iota
	for i := range result.Stream().All() {
		iotas = append(iotas, i)
	}
	logger.WithField("iotas", len(iotas)).Debug("decoded")

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

	if err := printFunc(hexast.UnitNode(iotas, options.SrcPath), options.IndentString(), output, options); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}
