// Package primitive wraps the raw symmetric cipher and KDF building blocks
// consumed by the secure cell containers: an AEAD cipher in Galois/Counter
// mode, a counter-mode stream cipher, a single-output KDF, and a
// cryptographic random source. Everything here is stateless beyond the
// lifetime of a single call.
package primitive

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

// AES-256-GCM parameters for the sealed (authenticated) container mode.
const (
	// AEADKeySize is the AES-256 key size in bytes.
	AEADKeySize = 32

	// AEADIVSize is the GCM nonce size in bytes.
	AEADIVSize = 12

	// AEADTagSize is the authentication tag size in bytes.
	AEADTagSize = 16
)

// AEADAlgorithm identifies the AEAD primitive selected by a container
// header. It is an opaque wire value, not a Go type switch key.
type AEADAlgorithm uint32

// AlgAESGCM256 is the only AEAD algorithm this package drives.
const AlgAESGCM256 AEADAlgorithm = 0x00000001

// Errors returned by the AEAD driver.
var (
	ErrAEADInvalidKeySize = errors.New("primitive: aead key must be 32 bytes")
	ErrAEADInvalidIVSize  = errors.New("primitive: aead iv must be 12 bytes")
	ErrAEADInvalidTagSize = errors.New("primitive: aead tag must be 16 bytes")
	ErrAEADAuthFailed     = errors.New("primitive: aead authentication failed")
)

// aeadContext is the create-phase state shared by encrypt and decrypt. It
// exists so the AAD/update/final/destroy lifecycle described by the
// container layer has somewhere concrete to live, even though the
// underlying AES-GCM implementation is single-shot rather than streaming.
type aeadContext struct {
	gcm cipher.AEAD
	iv  []byte
}

// create is step one of the lifecycle: build the cipher instance bound to
// a key and IV. The key must be 32 bytes (AES-256) and the IV exactly
// AEADIVSize bytes; these are fixed by the container layer, never
// negotiated.
func createAEAD(key, iv []byte) (*aeadContext, error) {
	if len(key) != AEADKeySize {
		return nil, ErrAEADInvalidKeySize
	}
	if len(iv) != AEADIVSize {
		return nil, ErrAEADInvalidIVSize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCMWithTagSize(block, AEADTagSize)
	if err != nil {
		return nil, err
	}
	return &aeadContext{gcm: gcm, iv: iv}, nil
}

// destroy releases the cipher context. AES-GCM holds no secret state
// beyond the key schedule already captured by cipher.Block, but the call
// is kept explicit so every exit path in the callers below runs it via
// defer, matching the create/aad/update/final/destroy contract.
func (c *aeadContext) destroy() {
	c.gcm = nil
	c.iv = nil
}

// submitAAD applies the "submit AAD only if the pointer is non-nil or its
// length is non-zero" rule: with the present empty-AAD profile both are
// false and aad comes back nil, but a future profile that sets AAD would
// still reach the underlying Seal/Open call.
func submitAAD(aad []byte) []byte {
	if aad != nil || len(aad) != 0 {
		return aad
	}
	return nil
}

// EncryptAEAD drives AES-256-GCM through create -> aad -> update -> final
// -> destroy for a single message. It returns ciphertext of exactly
// len(plaintext) bytes and a detached tag of AEADTagSize bytes, matching
// the split output the sealed container header expects.
func EncryptAEAD(key, iv, aad, plaintext []byte) (ciphertext, tag []byte, err error) {
	ctx, err := createAEAD(key, iv)
	if err != nil {
		return nil, nil, err
	}
	defer ctx.destroy()

	sealed := ctx.gcm.Seal(nil, ctx.iv, plaintext, submitAAD(aad))
	ciphertext = sealed[:len(plaintext)]
	tag = sealed[len(plaintext):]
	return ciphertext, tag, nil
}

// DecryptAEAD is the symmetric counterpart of EncryptAEAD. Any
// authentication failure — wrong key, wrong IV, tampered ciphertext,
// tampered AAD, tampered tag — collapses to ErrAEADAuthFailed; the caller
// cannot tell which of these caused it. A key, IV or tag of the wrong
// size is reported separately by the matching ErrAEADInvalid* error.
func DecryptAEAD(key, iv, aad, ciphertext, tag []byte) (plaintext []byte, err error) {
	if len(tag) != AEADTagSize {
		return nil, ErrAEADInvalidTagSize
	}
	ctx, err := createAEAD(key, iv)
	if err != nil {
		return nil, err
	}
	defer ctx.destroy()

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err = ctx.gcm.Open(nil, ctx.iv, sealed, submitAAD(aad))
	if err != nil {
		return nil, ErrAEADAuthFailed
	}
	return plaintext, nil
}
