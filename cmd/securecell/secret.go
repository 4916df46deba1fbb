package main

import (
	"fmt"
	"os"

	"github.com/backkem/securecell/pkg/primitive"
)

// pbkdf2DefaultIterations is the iteration count used for the
// --passphrase convenience path. It sits well above
// primitive.PBKDF2IterationsMin without approaching
// primitive.PBKDF2IterationsMax, trading a noticeable but tolerable
// per-invocation delay for passphrase-stretching headroom.
const pbkdf2DefaultIterations = 200_000

// resolveMasterSecret loads the master secret from whichever source
// loadGlobalConfig selected: a file's raw bytes, or a PBKDF2
// derivation from a passphrase and salt.
func resolveMasterSecret() ([]byte, error) {
	if masterSecretPath != "" {
		secret, err := os.ReadFile(masterSecretPath)
		if err != nil {
			return nil, fmt.Errorf("reading master secret file: %w", err)
		}
		return secret, nil
	}
	return primitive.PBKDF2SHA256([]byte(passphrase), []byte(passphraseSalt), pbkdf2DefaultIterations, primitive.AEADKeySize), nil
}
