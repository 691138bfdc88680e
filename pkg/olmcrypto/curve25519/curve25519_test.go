package curve25519

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeKey(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, 32)
	var out [32]byte
	copy(out[:], b)
	return out
}

// The vectors below were produced by running an independent,
// Montgomery-ladder X25519 implementation of RFC 7748 offline (outside
// this module) against two fixed scalars, so GenerateKey and
// SharedSecret are checked against a second implementation of the
// algorithm rather than just against themselves.
func TestGenerateKeyKnownVector(t *testing.T) {
	scalar := decodeKey(t, "b12086843447d9255eff454713ff598bab194481ae7f8b37d2fc7800c4068c4e")
	want := decodeKey(t, "823ae137501fead1f67684f68f6d084bdadbf43fcb40d944119ec97be7088f2a")

	got, err := GenerateKey(scalar)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSharedSecretKnownVector(t *testing.T) {
	scalarA := decodeKey(t, "b12086843447d9255eff454713ff598bab194481ae7f8b37d2fc7800c4068c4e")
	scalarB := decodeKey(t, "4d87e92d1170ba9e9afe7a64c931ae87dd7f1ed66e59f3a9ae622b2436be9bdb")
	pubA := decodeKey(t, "823ae137501fead1f67684f68f6d084bdadbf43fcb40d944119ec97be7088f2a")
	pubB := decodeKey(t, "19e0d1442442fb99d3b6feede710fd83a251f2ecb2757f9b47c2a1566205d54d")
	want := decodeKey(t, "3d037da4451ebae869e233225416ed7861a30ac2fb9e5e2b7e8064fd7f30dc46")

	gotA, err := SharedSecret(scalarA, pubB)
	require.NoError(t, err)
	require.Equal(t, want, gotA)

	gotB, err := SharedSecret(scalarB, pubA)
	require.NoError(t, err)
	require.Equal(t, want, gotB)
}

func TestSharedSecretIsSymmetric(t *testing.T) {
	alicePriv, alicePub, err := GenerateKeypair(nil)
	require.NoError(t, err)
	bobPriv, bobPub, err := GenerateKeypair(nil)
	require.NoError(t, err)

	aliceShared, err := SharedSecret(alicePriv, bobPub)
	require.NoError(t, err)
	bobShared, err := SharedSecret(bobPriv, alicePub)
	require.NoError(t, err)

	require.Equal(t, aliceShared, bobShared)
}

func TestGenerateKeypairProducesDistinctKeys(t *testing.T) {
	_, pub1, err := GenerateKeypair(nil)
	require.NoError(t, err)
	_, pub2, err := GenerateKeypair(nil)
	require.NoError(t, err)

	require.NotEqual(t, pub1, pub2)
}

func TestPlatformBackendNotBuilt(t *testing.T) {
	UsePlatformBackend()
	defer UsePortableBackend()

	var priv [32]byte
	_, err := GenerateKey(priv)
	require.Error(t, err)
}
