package obase64_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/obase64"
)

func TestEncodeDecodeVectors(t *testing.T) {
	input := []byte{0x00, 0x01, 0x02}

	require.Equal(t, "AAEC", obase64.EncodeToString(input))

	got, err := obase64.DecodeString("AAEC")
	require.NoError(t, err)
	require.Equal(t, input, got)

	got, err = obase64.DecodeString("AAE")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x01}, got)

	_, err = obase64.DecodeString("A")
	require.ErrorIs(t, err, olmcrypto.ErrMalformedBase64)
}

func TestLengthLaw(t *testing.T) {
	for n := 0; n < 64; n++ {
		encLen := obase64.EncodedLength(n)
		require.GreaterOrEqual(t, obase64.DecodedLength(encLen), n)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 16, 31, 32, 63, 100} {
		b := make([]byte, n)
		_, err := rand.Read(b)
		require.NoError(t, err)

		encoded := obase64.EncodeToString(b)
		require.Equal(t, obase64.EncodedLength(n), len(encoded))

		decoded, err := obase64.DecodeString(encoded)
		require.NoError(t, err)
		require.True(t, bytes.Equal(b, decoded))
	}
}

func TestDecodeRejectsNonAlphabetByte(t *testing.T) {
	_, err := obase64.DecodeString("AA!C")
	require.ErrorIs(t, err, olmcrypto.ErrMalformedBase64)
}

func TestEncodeIntoCallerBuffer(t *testing.T) {
	src := []byte("hello, olm")
	dst := make([]byte, obase64.EncodedLength(len(src)))
	n := obase64.Encode(dst, src)
	require.Equal(t, len(dst), n)

	back := make([]byte, obase64.DecodedLength(len(dst)))
	m, err := obase64.Decode(back, dst)
	require.NoError(t, err)
	require.Equal(t, src, back[:m])
}
