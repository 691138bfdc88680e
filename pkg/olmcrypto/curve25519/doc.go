// Package curve25519 implements Curve25519 (X25519) key generation and
// Diffie-Hellman agreement: the key-agreement half of Olm's asymmetric
// primitives.
//
// GenerateKey treats its 32-byte input as the private scalar and returns
// the public key scalar·basepoint(9). SharedSecret computes X25519(priv,
// peerPub). The output of SharedSecret must never be used directly as a
// symmetric key — always pass it through pkg/olmcrypto/hashkdf's HKDF
// first.
package curve25519
