package primitive

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 iteration bounds for the CLI's passphrase convenience. These are
// not part of the core container protocol — no container mode accepts a
// passphrase directly — but a CLI deriving a master secret from one
// needs the same sanity bounds the teacher enforces for its own
// password-based derivation.
const (
	PBKDF2IterationsMin = 1000
	PBKDF2IterationsMax = 1000000
)

// ErrKDFInvalidInput is returned when the master secret or context is
// empty; the single-output KDF the containers rely on refuses both.
var ErrKDFInvalidInput = errors.New("primitive: kdf requires non-empty master secret and context")

// Derive implements the single-output KDF the container layer is built
// on: one deterministic call from a master secret, a fixed label, and a
// caller context, producing exactly length bytes. It is built on
// HKDF-SHA256 (RFC 5869), folding label and context together into the
// HKDF "info" parameter as label || 0x00 || context so the two inputs
// can never collide on a shared byte boundary.
func Derive(master []byte, label string, ctx []byte, length int) ([]byte, error) {
	if len(master) == 0 || len(ctx) == 0 {
		return nil, ErrKDFInvalidInput
	}
	info := make([]byte, 0, len(label)+1+len(ctx))
	info = append(info, label...)
	info = append(info, 0)
	info = append(info, ctx...)

	reader := hkdf.New(sha256.New, master, nil, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, err
	}
	return out, nil
}

// PBKDF2SHA256 derives a key from a passphrase using PBKDF2-HMAC-SHA256
// (NIST 800-132). Used only by the CLI's --passphrase flag as a
// convenience for deriving an opaque master secret; the core containers
// never see a passphrase, only the derived bytes.
func PBKDF2SHA256(passphrase, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(passphrase, salt, iterations, keyLen, sha256.New)
}
