package securecell

import (
	"fmt"

	"github.com/backkem/securecell/pkg/primitive"
)

// Protect encrypts plaintext under masterSecret in token-protect mode:
// no authentication, context and ciphertext are returned separately.
// inContext is optional: when it is longer than the stream IV (16
// bytes), its first 16 bytes are used as the IV directly; otherwise a
// fresh random IV is drawn.
func Protect(masterSecret, plaintext, inContext []byte) (Context, []byte, error) {
	if len(masterSecret) == 0 {
		return nil, nil, fmt.Errorf("%w: empty master secret", ErrInvalidParameter)
	}
	if len(plaintext) == 0 {
		return nil, nil, fmt.Errorf("%w: empty plaintext", ErrInvalidParameter)
	}

	messageKey, err := deriveMessageKey(masterSecret, len(plaintext))
	if err != nil {
		return nil, nil, err
	}
	defer primitive.Wipe(messageKey)

	iv := make([]byte, protectedIVSize)
	if len(inContext) > protectedIVSize {
		copy(iv, inContext[:protectedIVSize])
	} else if err := primitive.Random(iv); err != nil {
		return nil, nil, fmt.Errorf("%w: generating iv: %v", ErrFail, err)
	}

	ciphertext, err := primitive.EncryptStream(messageKey, iv, plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: protecting: %v", ErrFail, err)
	}

	ctx := make([]byte, ProtectedContextSize)
	newTokenHeader(len(plaintext)).encode(ctx[:protectedHeaderSize])
	copy(ctx[protectedHeaderSize:], iv)

	return Context(ctx), ciphertext, nil
}

// Unprotect decrypts a ciphertext produced by Protect. Token-protect
// mode carries no authentication tag: a tampered ciphertext, a tampered
// IV, or a wrong masterSecret all decrypt without error to the wrong
// plaintext rather than failing. A context whose header fields do not
// describe a valid token-protect context is rejected with an error.
func Unprotect(masterSecret []byte, ctx Context, ciphertext []byte) ([]byte, error) {
	if len(masterSecret) == 0 {
		return nil, fmt.Errorf("%w: empty master secret", ErrInvalidParameter)
	}
	if len(ciphertext) == 0 {
		return nil, fmt.Errorf("%w: empty ciphertext", ErrInvalidParameter)
	}

	hdr, err := decodeTokenHeader(ctx)
	if err != nil {
		return nil, err
	}
	if hdr.alg != algStream {
		return nil, fmt.Errorf("%w: unexpected algorithm tag in protected context", ErrInvalidParameter)
	}
	if len(ciphertext) < int(hdr.messageLength) {
		return nil, fmt.Errorf("%w: ciphertext shorter than context message_length", ErrInvalidParameter)
	}
	if len(ctx) < protectedHeaderSize+int(hdr.ivLength) {
		return nil, fmt.Errorf("%w: protected context shorter than its declared iv_length", ErrInvalidParameter)
	}

	iv := ctx[protectedHeaderSize : protectedHeaderSize+int(hdr.ivLength)]
	message := ciphertext[:hdr.messageLength]

	messageKey, err := deriveMessageKey(masterSecret, len(ciphertext))
	if err != nil {
		return nil, err
	}
	defer primitive.Wipe(messageKey)

	plaintext, err := primitive.DecryptStream(messageKey, iv, message)
	if err != nil {
		return nil, fmt.Errorf("%w: unprotecting: %v", ErrFail, err)
	}
	return plaintext, nil
}
