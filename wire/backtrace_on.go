//go:build mqttwire_backtrace

package wire

import "github.com/cockroachdb/errors"

// captureTrace attaches a stack-capturing wrapper around e when the
// mqttwire_backtrace build tag is set. This is the opt-in "error-with-
// location" capability: the core error is always just a Kind plus a static
// description, and callers who need capture points opt into the cost here.
func captureTrace(e *Error) error {
	return errors.WithStack(e)
}
