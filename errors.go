package qualify

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrCanceled reports that a cancellation-aware adapter found its context
	// done before invoking the wrapped function. Errors carrying it also wrap
	// the context's own error.
	ErrCanceled = errors.New("qualify: evaluation canceled")

	// ErrRejected is returned by Guard for values that do not qualify.
	ErrRejected = errors.New("qualify: value rejected")
)

// canceled wraps a context error so it matches both ErrCanceled and cause.
func canceled(cause error) error {
	return fmt.Errorf("%w: %w", ErrCanceled, cause)
}

// IsCanceled reports whether err stems from cancellation, either observed by
// an adapter in this package or surfaced directly by a qualifier that
// returned its context's error.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
