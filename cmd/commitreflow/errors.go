package main

import "errors"

// Sentinel errors for the CLI collaborator, wrapped with %w so
// exitCodeFor can classify them with errors.Is.
var (
	ErrReadStdin     = errors.New("failed to read stdin")
	ErrWriteStdout   = errors.New("failed to write stdout")
	ErrWriteDebugSVG = errors.New("failed to write debug SVG")
)
