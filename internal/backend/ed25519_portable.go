package backend

import (
	"crypto/ed25519"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/securemem"
)

// PortableEd25519 implements Ed25519 on top of the standard library's
// crypto/ed25519, which is constant-time, deterministic per RFC 8032, and
// already rejects non-canonical S encodings during verification. No
// example repo in this module's corpus reimplements Ed25519 itself — every
// Ed25519 reference either wraps this same standard library type or binds
// to a native library via cgo — so there is no third-party pure-Go
// implementation this backend would be grounded in adopting instead.
type PortableEd25519 struct{}

func (PortableEd25519) GenerateKeypair(seed [32]byte) (priv [64]byte, pub [32]byte, err error) {
	key := ed25519.NewKeyFromSeed(seed[:])
	defer securemem.Scrub(key)
	copy(priv[:], key)
	copy(pub[:], key[32:])
	return priv, pub, nil
}

func (PortableEd25519) Sign(priv [64]byte, message []byte) ([64]byte, error) {
	var sig [64]byte
	copy(sig[:], ed25519.Sign(ed25519.PrivateKey(priv[:]), message))
	return sig, nil
}

func (PortableEd25519) Verify(pub [32]byte, message []byte, sig [64]byte) (bool, error) {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), message, sig[:]), nil
}
