package primitive

import "runtime"

// Wipe overwrites key with zeros. runtime.KeepAlive pins key past the
// final write so the compiler cannot prove the store dead and elide it,
// the Go-idiomatic stand-in for a volatile write or explicit
// secure-zero intrinsic. Callers derive a fresh key per call and must
// defer Wipe immediately after derivation so it runs on every exit
// path, including a panic unwinding through the caller.
func Wipe(key []byte) {
	for i := range key {
		key[i] = 0
	}
	runtime.KeepAlive(key)
}
