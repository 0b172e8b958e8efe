package main

import (
	"errors"

	flag "github.com/spf13/pflag"

	reflow "github.com/alnah/commitreflow"
)

// Exit codes for the commitreflow CLI. Follows Unix conventions:
// 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
)

// exitCodeFor returns the appropriate exit code for an error. It uses
// errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	if errors.Is(err, reflow.ErrInvalidWidth) ||
		errors.Is(err, reflow.ErrInvalidHeadlineWidth) {
		return ExitUsage
	}

	return ExitGeneral
}
