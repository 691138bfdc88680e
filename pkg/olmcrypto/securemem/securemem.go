package securemem

import (
	"crypto/subtle"
	"runtime"
)

// Scrub overwrites buf with zeros. The runtime.KeepAlive call after the loop
// prevents the compiler from recognizing the writes as a dead store and
// eliding them, which a plain "for i := range buf { buf[i] = 0 }" is free to
// do once buf is otherwise unused.
//
// Call Scrub on any buffer that held key material, MAC state, Curve25519 or
// Ed25519 scalars, or CBC padding scratch, on every exit path including
// error returns.
func Scrub(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// ConstantTimeEqual reports whether the first n bytes of a and b are equal,
// in time that depends only on n, not on where a and b first differ.
//
// It panics if either slice is shorter than n; callers are expected to know
// the fixed length of the secret they are comparing (a MAC tag, a signature
// half, a digest) before calling this function, so length itself is never
// the secret.
func ConstantTimeEqual(a, b []byte, n int) bool {
	if len(a) < n || len(b) < n {
		panic("securemem: ConstantTimeEqual: slice shorter than n")
	}
	return subtle.ConstantTimeCompare(a[:n], b[:n]) == 1
}
