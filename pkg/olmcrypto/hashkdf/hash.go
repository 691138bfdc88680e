package hashkdf

import "crypto/sha256"

// SHA256 computes the SHA-256 digest of input in one shot.
func SHA256(input []byte) [32]byte {
	return sha256.Sum256(input)
}
