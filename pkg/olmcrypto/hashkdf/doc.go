// Package hashkdf implements the three hash-based primitives Olm sessions
// build their key schedule from: a one-shot SHA-256, an RFC 2104
// HMAC-SHA-256, and an RFC 5869 HKDF-SHA-256 (extract-then-expand).
//
// All three must match their respective RFC/FIPS test vectors bit for bit;
// see this module's test files for the concrete vectors from spec §8.
package hashkdf
