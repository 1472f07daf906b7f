package restore

import (
	"errors"
	"fmt"

	"github.com/signadot/parenrestore/block"
)

var ErrCanonicalize = errors.New("canonicalize error")

// CanonicalizeError reports a form of the old text which could not be
// canonicalized.
type CanonicalizeError struct {
	Span block.Span
	Err  error
}

func (e *CanonicalizeError) Error() string {
	return fmt.Sprintf("%s: form at lines %s: %s", ErrCanonicalize, e.Span, e.Err)
}

func (e *CanonicalizeError) Unwrap() []error {
	return []error{ErrCanonicalize, e.Err}
}
