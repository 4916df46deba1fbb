package securecell

// Context is the non-secret metadata produced alongside a ciphertext:
// a header, an IV, and (sealed mode only) an authentication tag. It
// carries no plaintext and is safe to store or transmit alongside the
// ciphertext it belongs to.
type Context []byte
