//go:build !olm_platform_crypto

package backend

// PlatformCurve25519 is the non-platform-tagged stand-in for
// PlatformCurve25519, present so that pkg/olmcrypto/curve25519 can
// reference the type regardless of build tags. Build with
// -tags olm_platform_crypto to compile in the real (still unwired) variant
// instead.
type PlatformCurve25519 struct{}

func (PlatformCurve25519) GenerateKeypair([32]byte) ([32]byte, error) {
	return [32]byte{}, ErrNotBuilt
}

func (PlatformCurve25519) SharedSecret([32]byte, [32]byte) ([32]byte, error) {
	return [32]byte{}, ErrNotBuilt
}
