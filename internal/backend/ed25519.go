package backend

// Ed25519 is the capability interface both the portable and platform
// Ed25519 implementations satisfy.
type Ed25519 interface {
	// GenerateKeypair deterministically expands a 32-byte seed into a
	// 64-byte secret key and a 32-byte public key, per RFC 8032 §5.1.5.
	GenerateKeypair(seed [32]byte) (priv [64]byte, pub [32]byte, err error)

	// Sign produces a 64-byte detached signature over message.
	Sign(priv [64]byte, message []byte) (sig [64]byte, err error)

	// Verify reports whether sig is a valid signature over message under
	// pub.
	Verify(pub [32]byte, message []byte, sig [64]byte) (ok bool, err error)
}
