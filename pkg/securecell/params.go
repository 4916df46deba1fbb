// Package securecell implements the secure cell container protocol: three
// ways of protecting a byte-string payload with a caller-supplied master
// secret, built on the primitives in pkg/primitive.
//
//   - Seal/Unseal: authenticated (AEAD) mode. Produces a context carrying
//     a header, IV, and tag, plus a ciphertext the same length as the
//     plaintext. Tampering is detected on decrypt.
//   - Protect/Unprotect: token-protect mode. Produces a context carrying
//     a header and IV, plus a ciphertext the same length as the
//     plaintext. No integrity check.
//   - Imprint/Unimprint: context-imprint mode. Produces only a
//     ciphertext the same length as the plaintext; the caller-supplied
//     context is required on both ends and never appears on the wire.
//
// Every operation is synchronous and stateless: it derives a fresh
// per-message key, runs one primitive operation, wipes the key, and
// returns. Nothing here keeps state between calls.
package securecell

import "github.com/backkem/securecell/pkg/primitive"

// Fixed, non-negotiable protocol parameters.
const (
	// DerivedKeySize is the length of every per-message key this package
	// derives, for both the AEAD and stream primitives.
	DerivedKeySize = 32

	// sealedIVSize is the AEAD IV length used by Seal/Unseal.
	sealedIVSize = primitive.AEADIVSize // 12

	// sealedAADSize is the AAD length in the present profile. The
	// protocol carries an aad_length field so a future profile could
	// set this non-zero without changing the wire layout.
	sealedAADSize = 0

	// sealedTagSize is the AEAD authentication tag length.
	sealedTagSize = primitive.AEADTagSize // 16

	// sealedHeaderSize is the fixed 20-byte prefix of a sealed context:
	// four uint32 fields (alg, iv_length, aad_length, auth_tag_length)
	// plus a uint32 message_length.
	sealedHeaderSize = 20

	// SealedContextSize is the total size of a context produced by Seal:
	// header + IV + AAD + tag.
	SealedContextSize = sealedHeaderSize + sealedIVSize + sealedAADSize + sealedTagSize // 48

	// protectedIVSize is the stream IV length used by Protect/Unprotect.
	protectedIVSize = primitive.StreamIVSize // 16

	// protectedHeaderSize is the fixed 12-byte prefix of a token-protect
	// context: three uint32 fields (alg, iv_length, message_length).
	protectedHeaderSize = 12

	// ProtectedContextSize is the total size of a context produced by
	// Protect: header + IV.
	ProtectedContextSize = protectedHeaderSize + protectedIVSize // 28
)

// KDF labels. These are fixed, wire-relevant strings — changing them
// changes every derived key and breaks compatibility with existing
// sealed/protected/imprinted data.
const (
	kdfKeyLabel = "Themis secure cell message key"
	kdfIVLabel  = "Themis secure cell message iv"
)

// Algorithm tags stored in container headers. These round-trip through
// the wire format and must resolve to the same primitive on decrypt as
// they did on encrypt.
const (
	algAEAD   = uint32(primitive.AlgAESGCM256)
	algStream = uint32(primitive.AlgAESCTR256)
)
