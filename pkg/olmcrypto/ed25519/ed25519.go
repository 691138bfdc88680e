package ed25519

import (
	"crypto/rand"
	"io"

	"github.com/matrix-org/olm-crypto-go/internal/backend"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/securemem"
)

const (
	// SeedSize is the length in bytes of an Ed25519 key-generation seed.
	SeedSize = 32
	// PrivateKeySize is the length in bytes of an expanded Ed25519 private key.
	PrivateKeySize = 64
	// PublicKeySize is the length in bytes of an Ed25519 public key.
	PublicKeySize = 32
	// SignatureSize is the length in bytes of an Ed25519 signature.
	SignatureSize = 64
)

// active is the backend Sign, Verify, and GenerateKey dispatch through.
var active backend.Ed25519 = backend.PortableEd25519{}

// UsePortableBackend switches to the standard library's constant-time
// Ed25519 implementation. This is the default.
func UsePortableBackend() {
	active = backend.PortableEd25519{}
}

// UsePlatformBackend switches to the host cryptographic library backend.
// Until a platform implementation is wired in and this module is built
// with -tags olm_platform_crypto, every subsequent GenerateKey, Sign, and
// Verify call returns ErrBackendNotBuilt.
func UsePlatformBackend() {
	active = backend.PlatformEd25519{}
}

// GenerateKey expands seed into an Ed25519 private/public keypair.
func GenerateKey(seed [32]byte) (priv [64]byte, pub [32]byte, err error) {
	priv, pub, err = active.GenerateKeypair(seed)
	if err != nil {
		return [64]byte{}, [32]byte{}, olmcrypto.Errorf("ed25519.GenerateKey", err)
	}
	return priv, pub, nil
}

// GenerateKeypair draws a SeedSize-byte seed from rnd (crypto/rand.Reader
// if rnd is nil) and expands it into a keypair.
func GenerateKeypair(rnd io.Reader) (priv [64]byte, pub [32]byte, err error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	var seed [32]byte
	defer securemem.Scrub(seed[:])
	if _, err := io.ReadFull(rnd, seed[:]); err != nil {
		return [64]byte{}, [32]byte{}, olmcrypto.Errorf("ed25519.GenerateKeypair", err)
	}
	return GenerateKey(seed)
}

// Sign computes the Ed25519 signature of message under priv.
func Sign(priv [64]byte, message []byte) ([64]byte, error) {
	sig, err := active.Sign(priv, message)
	if err != nil {
		return [64]byte{}, olmcrypto.Errorf("ed25519.Sign", err)
	}
	return sig, nil
}

// Verify reports whether sig is a valid Ed25519 signature of message
// under pub. A malformed signature is reported as ok == false, not an
// error; err is reserved for backend-level failures (e.g. an unbuilt
// platform backend).
func Verify(pub [32]byte, message []byte, sig [64]byte) (ok bool, err error) {
	ok, err = active.Verify(pub, message, sig)
	if err != nil {
		return false, olmcrypto.Errorf("ed25519.Verify", err)
	}
	return ok, nil
}
