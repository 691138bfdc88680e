package backend

// Curve25519 is the capability interface both the portable and platform
// X25519 implementations satisfy.
type Curve25519 interface {
	// GenerateKeypair treats priv as the 32-byte scalar (clamped
	// internally per RFC 7748) and returns the corresponding public key,
	// scalar·basepoint(9).
	GenerateKeypair(priv [32]byte) (pub [32]byte, err error)

	// SharedSecret computes X25519(priv, peerPub).
	SharedSecret(priv, peerPub [32]byte) (shared [32]byte, err error)
}
