package hashkdf_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/hashkdf"
)

func TestHMACSHA256Determinism(t *testing.T) {
	key := []byte("key material")
	msg := []byte("message body")

	a := hashkdf.HMACSHA256(key, msg)
	b := hashkdf.HMACSHA256(key, msg)
	require.Equal(t, a, b)
}

func TestHMACSHA256KeyLongerThanBlockSize(t *testing.T) {
	longKey := bytes.Repeat([]byte{0xaa}, 100)
	tag := hashkdf.HMACSHA256(longKey, []byte("msg"))
	require.Len(t, tag, 32)
	require.NotEqual(t, [32]byte{}, tag)
}

func TestHMACSHA256VectorBytes(t *testing.T) {
	key := bytes.Repeat([]byte{0x0b}, 20)
	data := []byte("Hi There")
	want, err := hex.DecodeString("b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7")
	require.NoError(t, err)

	tag := hashkdf.HMACSHA256(key, data)
	require.True(t, bytes.Equal(tag[:], want))
}
