package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// printUsage prints the usage message to fs's declared output.
func printUsage(fs *flag.FlagSet) {
	printUsageTo(fs.Output(), fs)
}

func printUsageTo(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: commitreflow [flags] < message.txt")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrap a Git commit message to a configured body width,")
	fmt.Fprintln(w, "preserving its headline, list, code, table, and footer structure.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reads the message from stdin and writes the reflowed result to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, fs.FlagUsages())
}

func printVersion(w io.Writer, version string) {
	fmt.Fprintf(w, "commitreflow %s\n", version)
}
