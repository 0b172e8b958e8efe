package reflow

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidWidth         = errors.New("invalid body width")
	ErrInvalidHeadlineWidth = errors.New("invalid headline width")
	ErrInternal             = errors.New("internal pipeline error")
)
