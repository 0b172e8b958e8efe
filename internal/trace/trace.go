// Package trace provides a minimal, unleveled sink for --debug-trace
// diagnostics, modeled on maxprocs.Logger's callback rather than a
// full logging framework.
package trace

import (
	"fmt"
	"io"
)

// New returns a sink that writes prefixed, formatted lines to w. Pass
// it to reflow.Trace to enable per-line classification logging.
func New(w io.Writer) func(format string, args ...any) {
	return func(format string, args ...any) {
		fmt.Fprintf(w, "[commitreflow] "+format+"\n", args...)
	}
}
