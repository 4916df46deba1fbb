package securecell

import "errors"

// Sentinel errors. Every failure returned by this package wraps one of
// these with additional detail via fmt.Errorf's %w, so errors.Is still
// matches while the message carries diagnostics.
var (
	// ErrInvalidParameter is returned when a required input is nil or
	// empty, a header declares internally inconsistent sizes, or a
	// mandatory context was omitted (context-imprint mode).
	ErrInvalidParameter = errors.New("securecell: invalid parameter")

	// ErrFail is returned for any primitive failure: AEAD tag mismatch,
	// RNG failure, KDF failure. Tag-mismatch is deliberately not
	// distinguished from other primitive failures — a caller cannot
	// tell "decryption rejected" from "backend broken" from this error
	// alone.
	ErrFail = errors.New("securecell: operation failed")
)
