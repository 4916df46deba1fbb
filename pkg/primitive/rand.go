package primitive

import "crypto/rand"

// Random fills buf with cryptographically secure random bytes, used for
// IV generation whenever a container mode is not given an in-context to
// derive its IV from.
func Random(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}
