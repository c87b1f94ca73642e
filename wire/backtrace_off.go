//go:build !mqttwire_backtrace

package wire

// captureTrace is a no-op when the mqttwire_backtrace build tag is not set,
// which is the default: backtrace capture is a capability, not a
// requirement.
func captureTrace(_ *Error) error {
	return nil
}
