// Command commitreflow rewraps a Git commit message read from stdin,
// writing the reflowed result to stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	reflow "github.com/alnah/commitreflow"
	"github.com/alnah/commitreflow/internal/debugviz"
	"github.com/alnah/commitreflow/internal/trace"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	flags, _, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(ExitSuccess)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.debugTrace {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
		reflow.Trace = trace.New(os.Stderr)
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if flags.showVersion {
		printVersion(os.Stdout, version)
		os.Exit(ExitSuccess)
	}

	if err := run(flags, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func run(flags *cliFlags, in io.Reader, out io.Writer) error {
	opts := flags.options()

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadStdin, err)
	}

	if flags.debugSVG != "" {
		if err := writeDebugSVG(string(raw), opts, flags.debugSVG); err != nil {
			return err
		}
	}

	output, err := reflow.Reflow(string(raw), opts)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(out, output); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteStdout, err)
	}
	return nil
}

// writeDebugSVG rebuilds the classified document and renders its
// overlay, independent of the pretty-printed output, since the
// visualization reflects the classified tree rather than the wrapped
// text.
func writeDebugSVG(input string, opts reflow.Options, path string) error {
	lines := reflow.Lex(strings.Split(input, "\n"), opts)
	classified := reflow.Classify(lines)
	doc := reflow.BuildDocument(classified)

	if err := debugviz.Render(doc, path); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDebugSVG, err)
	}
	return nil
}
