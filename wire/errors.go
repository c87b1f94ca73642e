package wire

import (
	"errors"
	"fmt"
)

// Kind is the taxonomy of data-driven decode failures. Unlike misuse
// (oversized fields, over-large remaining length, out-of-range packet
// type), which panics, every Kind is returned to the caller.
type Kind int

const (
	// KindTruncated means the byte source ended inside a field.
	KindTruncated Kind = iota
	// KindSpecViolation means a structural mismatch with the wire grammar:
	// wrong packet type, wrong flag nibble, malformed remaining-length
	// encoding, wrong protocol name, unknown type nibble, or an ACK-like/
	// signal-like packet whose remaining length is wrong.
	KindSpecViolation
	// KindCapacityExhausted means a container backend could not accept
	// more data.
	KindCapacityExhausted
	// KindUnsupportedVersion is reported only when CONNECT's protocol-level
	// byte does not match the expected value, so a server can answer with
	// the protocol-mismatch CONNACK return code rather than dropping the
	// connection.
	KindUnsupportedVersion
)

func (k Kind) String() string {
	switch k {
	case KindTruncated:
		return "truncated"
	case KindSpecViolation:
		return "spec violation"
	case KindCapacityExhausted:
		return "capacity exhausted"
	case KindUnsupportedVersion:
		return "unsupported version"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by every decode operation. Its
// Description is a static string naming the violated rule; Trace is non-nil
// only when the mqttwire_backtrace build tag is set, in which case it
// carries a capture point courtesy of github.com/cockroachdb/errors.
type Error struct {
	Kind        Kind
	Description string
	Trace       error
	cause       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("mqttwire: %s: %s", e.Kind, e.Description)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind Kind, desc string, cause error) *Error {
	e := &Error{Kind: kind, Description: desc, cause: cause}
	e.Trace = captureTrace(e)
	return e
}

// ErrTruncated reports that the byte source ended inside a field.
func ErrTruncated(desc string) *Error {
	return newError(KindTruncated, desc, nil)
}

// ErrSpecViolation reports a structural mismatch with the wire grammar.
func ErrSpecViolation(desc string) *Error {
	return newError(KindSpecViolation, desc, nil)
}

// ErrCapacityExhausted wraps a container backend's capacity failure.
func ErrCapacityExhausted(cause error) *Error {
	return newError(KindCapacityExhausted, "container capacity exhausted", cause)
}

// ErrUnsupportedVersion reports a CONNECT protocol-level mismatch.
func ErrUnsupportedVersion(desc string) *Error {
	return newError(KindUnsupportedVersion, desc, nil)
}

// KindOf extracts the Kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
