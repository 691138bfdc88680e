package backend

import (
	"golang.org/x/crypto/curve25519"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/securemem"
)

// PortableCurve25519 implements Curve25519 on top of
// golang.org/x/crypto/curve25519, chosen over crypto/ecdh because it
// exposes the raw scalar and basepoint multiply the spec's bit-exact RFC
// 7748 test vectors need (crypto/ecdh hides clamping behind an opaque key
// type).
type PortableCurve25519 struct{}

func (PortableCurve25519) GenerateKeypair(priv [32]byte) ([32]byte, error) {
	var pub [32]byte
	out, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		// X25519 only errors when the scalar multiplies to the
		// all-zero point, which cannot happen for a properly clamped
		// scalar against the canonical basepoint; treat it as a
		// backend invariant break rather than a recoverable input
		// error (spec §7).
		panic("backend: PortableCurve25519.GenerateKeypair: " + err.Error())
	}
	copy(pub[:], out)
	return pub, nil
}

func (PortableCurve25519) SharedSecret(priv, peerPub [32]byte) ([32]byte, error) {
	var shared [32]byte
	out, err := curve25519.X25519(priv[:], peerPub[:])
	if err != nil {
		// A low-order peer public key multiplies to the all-zero
		// point; X25519 rejects it. This is a malformed peer key,
		// which the caller's session layer is expected to validate
		// before calling into this primitive, so it still surfaces
		// here as an invariant break rather than a silently-accepted
		// all-zero shared secret.
		panic("backend: PortableCurve25519.SharedSecret: " + err.Error())
	}
	copy(shared[:], out)
	securemem.Scrub(out)
	return shared, nil
}
