//go:build olm_platform_crypto

package backend

// PlatformCurve25519 is the entry point for a host cryptographic library
// backend (OpenSSL, BoringSSL, a hardware module). It compiles only when
// built with -tags olm_platform_crypto, and its methods currently report
// ErrNotBuilt until a real binding is wired in, matching this module's
// teacher's own not-yet-linked cgo bindings.
type PlatformCurve25519 struct{}

func (PlatformCurve25519) GenerateKeypair([32]byte) ([32]byte, error) {
	return [32]byte{}, ErrNotBuilt
}

func (PlatformCurve25519) SharedSecret([32]byte, [32]byte) ([32]byte, error) {
	return [32]byte{}, ErrNotBuilt
}
