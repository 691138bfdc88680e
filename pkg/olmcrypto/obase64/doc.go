// Package obase64 implements the canonical Olm Base64 form: the standard
// RFC 4648 alphabet with no '=' padding characters. It is the only encoding
// this module exposes on the wire boundary — public keys and signatures
// produced by Encode must be byte-identical to what other Matrix
// implementations produce from the same bytes.
//
// The codec is pure: it performs no allocation beyond its output buffer and
// carries no state between calls. Decode is intentionally variable-time;
// Base64 here is only ever applied to public values (public keys,
// signatures), never to secret key material.
package obase64
