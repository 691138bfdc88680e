package hashkdf

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/securemem"
)

// MaxExpandLength is the largest OKM length Expand will produce: 255 blocks
// of 32 bytes each, per RFC 5869. Requesting more is a programmer error.
const MaxExpandLength = 255 * 32

// Extract implements the RFC 5869 extract step: PRK = HMAC-SHA256(salt,
// IKM). A nil salt is treated as a 32-byte all-zero salt, and an explicit
// zero-length, non-nil salt behaves identically — both mean "use the
// all-zero salt" (spec §4.3, §9). Zero-length IKM is permitted.
func Extract(salt, ikm []byte) [32]byte {
	if len(salt) == 0 {
		salt = make([]byte, sha256.Size)
	}
	return HMACSHA256(salt, ikm)
}

// Expand implements the RFC 5869 expand step, producing length bytes of
// output keying material from prk and info. It panics if length exceeds
// MaxExpandLength, per spec §4.3's "exceeding this is a programming error."
func Expand(prk [32]byte, info []byte, length int) []byte {
	if length > MaxExpandLength {
		panic("hashkdf: Expand: requested length exceeds 255*32 bytes")
	}

	defer securemem.Scrub(prk[:])

	r := hkdf.Expand(sha256.New, prk[:], info)
	okm := make([]byte, length)
	if _, err := io.ReadFull(r, okm); err != nil {
		// hkdf.Expand only fails this way if length exceeds its own
		// 255*32 ceiling, which the check above already rules out; any
		// other failure is an invariant break in the backend, not a
		// data-driven input, so it is unrecoverable (spec §7).
		panic("hashkdf: Expand: backend invariant failure: " + err.Error())
	}
	return okm
}

// HKDF runs Extract then Expand in one call: the common case where a
// caller has raw IKM and wants OKM directly.
func HKDF(salt, ikm, info []byte, length int) []byte {
	prk := Extract(salt, ikm)
	defer securemem.Scrub(prk[:])
	return Expand(prk, info, length)
}
