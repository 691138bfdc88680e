// Package ed25519 implements Ed25519 key generation, signing, and
// verification: Olm's signing primitive, used to authenticate identity
// keys and one-time keys.
//
// GenerateKey expands a 32-byte seed into a private/public keypair per
// RFC 8032. Sign and Verify operate on the full 64-byte expanded private
// key and 32-byte public key respectively.
package ed25519
