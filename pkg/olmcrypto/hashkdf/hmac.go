package hashkdf

import (
	"crypto/sha256"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/securemem"
)

const blockSize = 64 // SHA-256 block size, RFC 2104.

// HMACSHA256 computes the RFC 2104 HMAC construction over message with key,
// using SHA-256 as the underlying hash.
//
// It is implemented directly against crypto/sha256 rather than crypto/hmac
// so that ipad, opad, and the working copy of key can be scrubbed on every
// exit path, per spec §4.3: crypto/hmac's hash.Hash wrapper keeps its inner
// state private, which makes that scrub impossible from the outside.
func HMACSHA256(key, message []byte) [32]byte {
	var workingKey [blockSize]byte
	defer securemem.Scrub(workingKey[:])

	if len(key) > blockSize {
		sum := sha256.Sum256(key)
		copy(workingKey[:], sum[:])
		securemem.Scrub(sum[:])
	} else {
		copy(workingKey[:], key)
	}

	var ipad, opad [blockSize]byte
	defer securemem.Scrub(ipad[:])
	defer securemem.Scrub(opad[:])

	for i := 0; i < blockSize; i++ {
		ipad[i] = workingKey[i] ^ 0x36
		opad[i] = workingKey[i] ^ 0x5c
	}

	inner := sha256.New()
	inner.Write(ipad[:])
	inner.Write(message)
	innerSum := inner.Sum(nil)
	defer securemem.Scrub(innerSum)

	outer := sha256.New()
	outer.Write(opad[:])
	outer.Write(innerSum)

	var result [32]byte
	copy(result[:], outer.Sum(nil))
	return result
}
