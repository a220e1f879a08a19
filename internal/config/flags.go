package config

// This file implements CLI flag parsing and help text for both tools.
// Each tool registers only the flags it uses; shared display flags are
// defined once. Negated flags (--no-color) are applied after Parse so
// Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
)

// version is shown in --version and help; override at build time with -ldflags "-X ...config.version=".
var version = "1.0.0-dev"

// negatedFlags holds boolean flags that are applied after Parse. These either
// invert a default (e.g. noColor) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// ParseStampFlags parses os.Args for pdfstamp into cfg. Passing --dir
// disables the interactive prompts. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag).
func ParseStampFlags(cfg *Config) error {
	fs := flag.NewFlagSet("pdfstamp", flag.ContinueOnError)
	fs.Usage = func() { printStampUsage() }

	var negated negatedFlags
	var dir string

	fs.StringVar(&dir, "dir", "", "Directory containing PDFs (skips the prompt)")
	fs.IntVar(&cfg.FontSize, "font-size", cfg.FontSize, "Title font size in points")
	fs.StringVar(&cfg.OutputSuffix, "suffix", cfg.OutputSuffix, "Suffix for output filenames")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Replace originals instead of writing suffixed copies")
	fs.Float64Var(&cfg.PosX, "x", cfg.PosX, "Title X position from the left edge")
	fs.Float64Var(&cfg.PosY, "y", cfg.PosY, "Title Y position from the top edge")
	defineDisplayFlags(fs, cfg, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	applyNegatedFlags(fs, cfg, &negated, "pdfstamp")

	if dir != "" {
		cfg.InputDir = NormalizeDirArg(dir)
		cfg.Interactive = false
	}
	if len(fs.Args()) != 0 {
		return fmt.Errorf("unexpected argument %q (use --dir)", fs.Args()[0])
	}
	return nil
}

// ParseMergeFlags parses os.Args for pdfmerge into cfg. The folder is a
// single positional argument.
func ParseMergeFlags(cfg *Config) error {
	fs := flag.NewFlagSet("pdfmerge", flag.ContinueOnError)
	fs.Usage = func() { printMergeUsage() }

	var negated negatedFlags

	fs.StringVar(&cfg.OutputName, "output", cfg.OutputName, "Name of the merged output file")
	fs.StringVar(&cfg.OutputName, "o", cfg.OutputName, "Same as --output")
	defineDisplayFlags(fs, cfg, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	applyNegatedFlags(fs, cfg, &negated, "pdfmerge")

	args := fs.Args()
	if len(args) != 1 {
		return fmt.Errorf("need exactly one folder argument")
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	cfg.Interactive = false
	return nil
}

// defineDisplayFlags registers --color, --no-color, verbose, --log, --version, --help.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg and handles the
// help/version exits.
func applyNegatedFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags, tool string) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
	if n.showHelp {
		fs.Usage()
		os.Exit(0)
	}
	if n.showVersion {
		fmt.Fprintln(os.Stdout, tool+" v"+version)
		os.Exit(0)
	}
}

// usageLine pairs a flag column with its description for aligned help output.
type usageLine struct {
	flags string
	desc  string
}

func printStampUsage() {
	printUsage([]usageLine{
		{"", "pdfstamp v" + version + " - stamp each PDF's filename onto its pages"},
		{"", ""},
		{"  pdfstamp [OPTIONS]", ""},
		{"", ""},
		{"Without --dir the tool prompts for the directory and font size.", ""},
		{"", ""},
		{"Stamping", ""},
		{"  --dir <path>", "Directory containing PDFs (skips the prompt)"},
		{"  --font-size <points>", "Title font size (default: 24)"},
		{"  --x <px>", "Title X position from the left edge (default: 50)"},
		{"  --y <px>", "Title Y position from the top edge (default: 80)"},
		{"  --suffix <text>", "Output filename suffix (default: _titled)"},
		{"  --overwrite", "Replace originals instead of writing copies"},
		{"", ""},
		{"Display", ""},
		{"  --color / --no-color", "Force / disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	})
}

func printMergeUsage() {
	printUsage([]usageLine{
		{"", "pdfmerge v" + version + " - merge all PDFs in a folder into one file"},
		{"", ""},
		{"  pdfmerge [OPTIONS] <folder>", ""},
		{"", ""},
		{"Files merge in natural filename order (file2 before file10).", ""},
		{"Unreadable files are skipped with a warning.", ""},
		{"", ""},
		{"Merging", ""},
		{"  -o, --output <name>", "Merged output filename (default: ALL.pdf)"},
		{"", ""},
		{"Display", ""},
		{"  --color / --no-color", "Force / disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	})
}

// printUsage writes help text to stderr. Column-aligned for readability.
func printUsage(lines []usageLine) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
