package curve25519

import (
	"crypto/rand"
	"io"

	"github.com/matrix-org/olm-crypto-go/internal/backend"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/securemem"
)

const (
	// PrivateKeySize is the length in bytes of a Curve25519 private scalar.
	PrivateKeySize = 32
	// PublicKeySize is the length in bytes of a Curve25519 public key.
	PublicKeySize = 32
	// SharedSecretSize is the length in bytes of an X25519 shared secret.
	SharedSecretSize = 32
)

// active is the backend GenerateKey and SharedSecret dispatch through. The
// selection happens once here, a single indirect call outside the hot
// per-call path, rather than via build tags scattered through this file
// (spec §9).
var active backend.Curve25519 = backend.PortableCurve25519{}

// UsePortableBackend switches to the bundled, pure-Go X25519
// implementation. This is the default.
func UsePortableBackend() {
	active = backend.PortableCurve25519{}
}

// UsePlatformBackend switches to the host cryptographic library backend.
// Until a platform implementation is wired in and this module is built
// with -tags olm_platform_crypto, every subsequent GenerateKey and
// SharedSecret call returns ErrBackendNotBuilt.
func UsePlatformBackend() {
	active = backend.PlatformCurve25519{}
}

// GenerateKey treats priv as the 32-byte private scalar (clamped
// internally per RFC 7748) and returns the corresponding public key,
// scalar·basepoint(9).
func GenerateKey(priv [32]byte) ([32]byte, error) {
	pub, err := active.GenerateKeypair(priv)
	if err != nil {
		return [32]byte{}, olmcrypto.Errorf("curve25519.GenerateKey", err)
	}
	return pub, nil
}

// GenerateKeypair draws PrivateKeySize bytes from rnd (crypto/rand.Reader
// if rnd is nil) and returns the resulting private/public keypair.
func GenerateKeypair(rnd io.Reader) (priv, pub [32]byte, err error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	if _, err := io.ReadFull(rnd, priv[:]); err != nil {
		return [32]byte{}, [32]byte{}, olmcrypto.Errorf("curve25519.GenerateKeypair", err)
	}
	pub, err = GenerateKey(priv)
	if err != nil {
		securemem.Scrub(priv[:])
		return [32]byte{}, [32]byte{}, err
	}
	return priv, pub, nil
}

// SharedSecret computes X25519(ourPriv, theirPub). The result must be fed
// through pkg/olmcrypto/hashkdf's HKDF before use as a symmetric key; it
// is never safe to use directly.
func SharedSecret(ourPriv, theirPub [32]byte) ([32]byte, error) {
	shared, err := active.SharedSecret(ourPriv, theirPub)
	if err != nil {
		return [32]byte{}, olmcrypto.Errorf("curve25519.SharedSecret", err)
	}
	return shared, nil
}
