package securecell

import (
	"fmt"

	"github.com/backkem/securecell/pkg/primitive"
)

// Imprint encrypts plaintext under masterSecret in context-imprint
// mode. context is mandatory and never appears in the output: it is
// required again, identically, to Unimprint. There is no header, no
// tag, and no randomness — two calls with identical inputs produce
// byte-identical ciphertext.
func Imprint(masterSecret, plaintext, context []byte) ([]byte, error) {
	if len(masterSecret) == 0 {
		return nil, fmt.Errorf("%w: empty master secret", ErrInvalidParameter)
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrInvalidParameter)
	}
	if len(context) == 0 {
		return nil, fmt.Errorf("%w: context-imprint mode requires a non-empty context", ErrInvalidParameter)
	}

	messageKey, err := deriveMessageKey(masterSecret, len(plaintext))
	if err != nil {
		return nil, err
	}
	defer primitive.Wipe(messageKey)

	iv, err := deriveImprintIV(messageKey, context)
	if err != nil {
		return nil, err
	}

	ciphertext, err := primitive.EncryptStream(messageKey, iv, plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: imprinting: %v", ErrFail, err)
	}
	return ciphertext, nil
}

// Unimprint decrypts a ciphertext produced by Imprint. context must be
// the exact value supplied to Imprint; there is no way to detect a
// wrong context or a wrong masterSecret here — both simply produce the
// wrong plaintext, since context-imprint mode carries no integrity
// check. The key-derivation length argument is len(ciphertext), not a
// value recovered from any header — there is none.
func Unimprint(masterSecret, context, ciphertext []byte) ([]byte, error) {
	if len(masterSecret) == 0 {
		return nil, fmt.Errorf("%w: empty master secret", ErrInvalidParameter)
	}
	if len(context) == 0 {
		return nil, fmt.Errorf("%w: context-imprint mode requires a non-empty context", ErrInvalidParameter)
	}
	if len(ciphertext) == 0 {
		return nil, fmt.Errorf("%w: empty ciphertext", ErrInvalidParameter)
	}

	messageKey, err := deriveMessageKey(masterSecret, len(ciphertext))
	if err != nil {
		return nil, err
	}
	defer primitive.Wipe(messageKey)

	iv, err := deriveImprintIV(messageKey, context)
	if err != nil {
		return nil, err
	}

	plaintext, err := primitive.DecryptStream(messageKey, iv, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: unimprinting: %v", ErrFail, err)
	}
	return plaintext, nil
}
