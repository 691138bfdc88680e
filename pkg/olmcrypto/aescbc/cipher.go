package aescbc

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/securemem"
)

const (
	// KeySize is the length in bytes of an AES-256 key.
	KeySize = 32
	// IVSize is the length in bytes of the CBC initialization vector.
	IVSize = 16
	// BlockSize is the AES block size, and the PKCS#7 padding unit.
	BlockSize = aes.BlockSize
)

// CiphertextLength returns the ciphertext length produced by Encrypt for a
// plaintext of n bytes: n + 16 - (n mod 16). A full block of padding is
// always appended, even when n is already block-aligned.
func CiphertextLength(n int) int {
	return n + BlockSize - (n % BlockSize)
}

// Encrypt encrypts plaintext under key and iv with AES-256-CBC and PKCS#7
// padding. key must be 32 bytes and iv must be 16 bytes.
//
// The returned ciphertext carries no authentication tag. Callers must
// compute and transmit a MAC over (iv || ciphertext) themselves.
func Encrypt(key, iv, plaintext []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, olmcrypto.Errorf("aescbc.Encrypt", errors.New("key must be 32 bytes"))
	}
	if len(iv) != IVSize {
		return nil, olmcrypto.Errorf("aescbc.Encrypt", errors.New("iv must be 16 bytes"))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		// The key length was already validated above; any failure here is
		// a backend invariant break, not a data-driven input (spec §7).
		panic("aescbc: Encrypt: backend invariant failure: " + err.Error())
	}

	padded := pkcs7Pad(plaintext)
	defer securemem.Scrub(padded)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// Decrypt decrypts ciphertext under key and iv and strips PKCS#7 padding.
// key must be 32 bytes and iv must be 16 bytes.
//
// Decrypt returns ErrInvalidCiphertext if len(ciphertext) is not a positive
// multiple of 16, or if the decrypted padding tail is malformed. It is the
// caller's responsibility to have verified a MAC over (iv || ciphertext) in
// constant time before calling Decrypt — see the package doc comment.
func Decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, olmcrypto.Errorf("aescbc.Decrypt", errors.New("key must be 32 bytes"))
	}
	if len(iv) != IVSize {
		return nil, olmcrypto.Errorf("aescbc.Decrypt", errors.New("iv must be 16 bytes"))
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, olmcrypto.Errorf("aescbc.Decrypt", olmcrypto.ErrInvalidCiphertext)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		panic("aescbc: Decrypt: backend invariant failure: " + err.Error())
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	padLen, ok := validatePadding(padded)
	if !ok {
		securemem.Scrub(padded)
		return nil, olmcrypto.Errorf("aescbc.Decrypt", olmcrypto.ErrInvalidCiphertext)
	}

	plaintext := make([]byte, len(padded)-padLen)
	copy(plaintext, padded[:len(padded)-padLen])
	securemem.Scrub(padded)

	return plaintext, nil
}
