package hashkdf_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/hashkdf"
)

func TestSHA256Empty(t *testing.T) {
	digest := hashkdf.SHA256(nil)
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hex.EncodeToString(digest[:]))
}

func TestSHA256Deterministic(t *testing.T) {
	a := hashkdf.SHA256([]byte("matrix olm"))
	b := hashkdf.SHA256([]byte("matrix olm"))
	require.Equal(t, a, b)
}
