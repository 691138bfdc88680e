package olmcrypto

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedBase64 indicates a Base64 decode failure: an input length
	// congruent to 1 mod 4, or a byte outside the unpadded RFC 4648
	// alphabet.
	ErrMalformedBase64 = errors.New("olmcrypto: malformed base64 input")

	// ErrInvalidCiphertext indicates an AES-CBC decrypt failure: a
	// ciphertext length that is not a positive multiple of 16, a PKCS#7
	// trailing-length byte that is 0 or greater than 16, or a padding tail
	// whose bytes do not all equal that length byte.
	ErrInvalidCiphertext = errors.New("olmcrypto: invalid ciphertext")

	// ErrInvalidSignature indicates Ed25519 verification returned false.
	ErrInvalidSignature = errors.New("olmcrypto: invalid signature")

	// ErrBackendNotBuilt indicates a platform crypto backend was selected
	// but the corresponding native bindings were not linked into this
	// build.
	ErrBackendNotBuilt = errors.New("olmcrypto: backend not built")
)

// Error wraps an underlying error with the name of the operation that
// produced it, in the style of the session layer's own error taxonomy
// (bad-ciphertext, bad-signature, bad-base64): the primitive layer signals
// recoverable conditions as sentinel errors, and Error adds just enough
// context for a caller to log or branch on without needing to parse a
// message string.
type Error struct {
	Op  string // Operation that failed, e.g. "obase64.Decode"
	Err error  // Underlying sentinel error
}

func (e *Error) Error() string {
	return fmt.Sprintf("olmcrypto.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf wraps a sentinel error with the operation that produced it.
func errorf(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// Errorf is the exported form of errorf, used by sibling packages in this
// module to attach their own operation name to one of the sentinel errors
// above without constructing *Error by hand.
func Errorf(op string, err error) error {
	return errorf(op, err)
}
