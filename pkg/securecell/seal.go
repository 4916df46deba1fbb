package securecell

import (
	"fmt"

	"github.com/backkem/securecell/pkg/primitive"
)

// Seal encrypts plaintext under masterSecret in sealed (authenticated)
// mode. inContext is optional: when it is longer than the AEAD IV and
// AAD combined (12 bytes in this profile), its first 12 bytes are used
// as the IV directly, making the call deterministic; otherwise a fresh
// random IV is drawn. Seal returns the container context (header, IV,
// tag) and a ciphertext the same length as plaintext.
func Seal(masterSecret, plaintext, inContext []byte) (Context, []byte, error) {
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

	iv := make([]byte, sealedIVSize)
	if len(inContext) > sealedIVSize+sealedAADSize {
		copy(iv, inContext[:sealedIVSize])
	} else if err := primitive.Random(iv); err != nil {
		return nil, nil, fmt.Errorf("%w: generating iv: %v", ErrFail, err)
	}

	ciphertext, tag, err := primitive.EncryptAEAD(messageKey, iv, nil, plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: sealing: %v", ErrFail, err)
	}

	ctx := make([]byte, SealedContextSize)
	newSealedHeader(len(plaintext)).encode(ctx[:sealedHeaderSize])
	copy(ctx[sealedHeaderSize:sealedHeaderSize+sealedIVSize], iv)
	copy(ctx[sealedHeaderSize+sealedIVSize+sealedAADSize:], tag)

	return Context(ctx), ciphertext, nil
}

// Unseal decrypts a ciphertext produced by Seal, verifying the
// authentication tag carried in ctx. It returns ErrFail, wrapping the
// underlying AEAD auth failure, if the ciphertext, IV or tag were
// tampered with or if masterSecret does not match the one used to
// seal. Header fields that do not match the sealed profile, or a
// message_length larger than the ciphertext, are rejected with
// ErrInvalidParameter before any decryption is attempted. The
// key-derivation length argument is len(ciphertext), not the
// message_length recorded in ctx — the two must agree for decryption
// to succeed.
func Unseal(masterSecret []byte, ctx Context, ciphertext []byte) ([]byte, error) {
	if len(masterSecret) == 0 {
		return nil, fmt.Errorf("%w: empty master secret", ErrInvalidParameter)
	}
	if len(ciphertext) == 0 {
		return nil, fmt.Errorf("%w: empty ciphertext", ErrInvalidParameter)
	}

	hdr, err := decodeSealedHeader(ctx)
	if err != nil {
		return nil, err
	}
	if hdr.alg != algAEAD {
		return nil, fmt.Errorf("%w: unexpected algorithm tag in sealed context", ErrInvalidParameter)
	}
	if hdr.ivLength != sealedIVSize || hdr.aadLength != sealedAADSize || hdr.authTagLength != sealedTagSize {
		return nil, fmt.Errorf("%w: inconsistent sealed context field sizes", ErrInvalidParameter)
	}
	if len(ciphertext) < int(hdr.messageLength) {
		return nil, fmt.Errorf("%w: ciphertext shorter than context message_length", ErrInvalidParameter)
	}
	if len(ctx) < sealedHeaderSize+int(hdr.ivLength)+int(hdr.aadLength)+int(hdr.authTagLength) {
		return nil, fmt.Errorf("%w: sealed context shorter than its declared field sizes", ErrInvalidParameter)
	}

	iv := ctx[sealedHeaderSize : sealedHeaderSize+sealedIVSize]
	tag := ctx[sealedHeaderSize+sealedIVSize+sealedAADSize : sealedHeaderSize+sealedIVSize+sealedAADSize+sealedTagSize]
	message := ciphertext[:hdr.messageLength]

	messageKey, err := deriveMessageKey(masterSecret, len(ciphertext))
	if err != nil {
		return nil, err
	}
	defer primitive.Wipe(messageKey)

	plaintext, err := primitive.DecryptAEAD(messageKey, iv, nil, message, tag)
	if err != nil {
		return nil, fmt.Errorf("%w: unsealing: %v", ErrFail, err)
	}
	return plaintext, nil
}
