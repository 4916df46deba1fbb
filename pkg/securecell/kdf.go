package securecell

import (
	"encoding/binary"
	"fmt"

	"github.com/backkem/securecell/pkg/primitive"
)

// lengthBytes encodes n as an 8-byte little-endian value for use as a
// KDF context. The original implementation this protocol is derived
// from feeds the raw in-memory bytes of a platform size_t into the KDF,
// which makes stored artifacts non-portable between 32-bit and 64-bit
// hosts. This implementation fixes the encoding at 8 bytes
// little-endian on every platform instead, trading compatibility with
// that native-width behavior for a portable, self-consistent one.
func lengthBytes(n int) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(n))
	return buf
}

// deriveMessageKey derives the per-message key used by all three modes:
// HKDF(master, "...message key", lengthBytes(n)).
// The length argument is the plaintext length on encrypt and the
// caller-supplied ciphertext length on decrypt — these must agree for
// decryption to succeed, which holds because every mode here produces
// ciphertext exactly as long as its plaintext.
func deriveMessageKey(master []byte, n int) ([]byte, error) {
	key, err := primitive.Derive(master, kdfKeyLabel, lengthBytes(n), DerivedKeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: deriving message key: %v", ErrFail, err)
	}
	return key, nil
}

// deriveImprintIV derives the context-imprint mode's stream IV from the
// already-derived message key and the caller's associated context,
// making imprint deterministic for a fixed (master, plaintext, context)
// triple.
func deriveImprintIV(messageKey, context []byte) ([]byte, error) {
	iv, err := primitive.Derive(messageKey, kdfIVLabel, context, protectedIVSize)
	if err != nil {
		return nil, fmt.Errorf("%w: deriving imprint iv: %v", ErrFail, err)
	}
	return iv, nil
}
