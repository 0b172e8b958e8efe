package reflow

import (
	"fmt"
	"strings"
)

// Reflow rewraps a raw commit message according to opts, running it
// through the lex, classify, tree-build, and pretty-print stages. It
// returns an error if opts fails validation; any unexpected internal
// failure is recovered and returned as an error wrapping ErrInternal
// rather than propagated as a panic.
func Reflow(input string, opts Options) (result string, err error) {
	if verr := opts.Validate(); verr != nil {
		return "", verr
	}

	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	lines := strings.Split(input, "\n")
	lexed := Lex(lines, opts)
	classified := Classify(lexed)
	doc := BuildDocument(classified)
	return PrettyPrint(doc, opts), nil
}
