package main

import (
	flag "github.com/spf13/pflag"

	reflow "github.com/alnah/commitreflow"
)

// cliFlags holds all flags for the commitreflow command.
type cliFlags struct {
	width         int
	headlineWidth int
	noANSI        bool
	debugSVG      string
	debugTrace    bool
	showVersion   bool
}

// parseFlags parses os.Args[1:]-style arguments and returns the parsed
// flags plus any leftover positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("commitreflow", flag.ContinueOnError)
	f := &cliFlags{}

	fs.IntVarP(&f.width, "width", "w", reflow.DefaultWidth, "body wrap width in columns")
	fs.IntVar(&f.headlineWidth, "headline-width", reflow.DefaultHeadlineWidth, "advisory headline width in columns")
	fs.BoolVar(&f.noANSI, "no-ansi", false, "strip ANSI escapes before measuring width")
	fs.StringVar(&f.debugSVG, "debug-svg", "", "write a classification-overlay SVG to the given path")
	fs.BoolVar(&f.debugTrace, "debug-trace", false, "log per-line classification detail to stderr")
	fs.BoolVar(&f.showVersion, "version", false, "print version information")

	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// options converts the parsed flags into reflow.Options.
func (f *cliFlags) options() reflow.Options {
	return reflow.Options{
		Width:         f.width,
		HeadlineWidth: f.headlineWidth,
		StripANSI:     f.noANSI,
	}
}
