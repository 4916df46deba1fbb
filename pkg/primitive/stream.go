// AES-256-CTR stream cipher driver for the token-protect and
// context-imprint container modes. CTR is unauthenticated: it is the
// caller's job (the container layer) to decide whether that is
// acceptable for a given mode.
package primitive

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

// AES-256-CTR parameters for the unauthenticated container modes.
const (
	// StreamKeySize is the AES-256 key size in bytes.
	StreamKeySize = 32

	// StreamIVSize is the CTR nonce size in bytes.
	StreamIVSize = 16
)

// StreamAlgorithm identifies the stream primitive selected by a container
// header.
type StreamAlgorithm uint32

// AlgAESCTR256 is the only stream algorithm this package drives.
const AlgAESCTR256 StreamAlgorithm = 0x00000002

// Errors returned by the stream driver.
var (
	ErrStreamInvalidKeySize = errors.New("primitive: stream key must be 32 bytes")
	ErrStreamInvalidIVSize  = errors.New("primitive: stream iv must be 16 bytes")
)

// streamContext is the create-phase state for an AES-CTR operation.
type streamContext struct {
	stream cipher.Stream
}

// create builds the keystream generator bound to a key and IV.
func createStream(key, iv []byte) (*streamContext, error) {
	if len(key) != StreamKeySize {
		return nil, ErrStreamInvalidKeySize
	}
	if len(iv) != StreamIVSize {
		return nil, ErrStreamInvalidIVSize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &streamContext{stream: cipher.NewCTR(block, iv)}, nil
}

// update XORs src against the next portion of keystream. CTR mode never
// buffers, so the full input is consumed immediately.
func (c *streamContext) update(src []byte) []byte {
	dst := make([]byte, len(src))
	c.stream.XORKeyStream(dst, src)
	return dst
}

// final returns any trailing output the primitive withholds until the
// stream is closed. Counter mode never withholds anything, but the
// driver does not assume that — it always calls final and appends
// whatever it returns, so the concatenation stays correct if the
// algorithm behind streamContext ever changes.
func (c *streamContext) final() []byte {
	return nil
}

func (c *streamContext) destroy() {
	c.stream = nil
}

// runStream drives create -> update -> final -> destroy for one message
// and concatenates the update and final outputs into a single
// contiguous buffer, recording the update length and placing final's
// output immediately after it.
func runStream(key, iv, in []byte) ([]byte, error) {
	ctx, err := createStream(key, iv)
	if err != nil {
		return nil, err
	}
	defer ctx.destroy()

	updateOut := ctx.update(in)
	finalOut := ctx.final()

	out := make([]byte, 0, len(updateOut)+len(finalOut))
	out = append(out, updateOut...)
	out = append(out, finalOut...)
	return out, nil
}

// EncryptStream drives AES-256-CTR encryption for a single message.
// Ciphertext is always exactly len(plaintext) bytes.
func EncryptStream(key, iv, plaintext []byte) ([]byte, error) {
	return runStream(key, iv, plaintext)
}

// DecryptStream drives AES-256-CTR decryption for a single message.
// CTR mode is its own inverse, so this is identical to EncryptStream;
// it is kept as a separate entry point to mirror the container layer's
// encrypt/decrypt symmetry and to leave room for a primitive that isn't
// self-inverse.
func DecryptStream(key, iv, ciphertext []byte) ([]byte, error) {
	return runStream(key, iv, ciphertext)
}
