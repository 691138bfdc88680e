package obase64

import (
	"bytes"
	"encoding/base64"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto"
)

// encoding is the standard RFC 4648 alphabet with padding stripped, which is
// exactly the canonical Olm Base64 form described in spec §4.2.
var encoding = base64.RawStdEncoding

// EncodedLength returns the number of characters Encode writes for an input
// of n bytes: ceil(4n/3).
func EncodedLength(n int) int {
	return encoding.EncodedLen(n)
}

// DecodedLength returns the number of bytes Decode writes for an input of n
// characters: floor(3n/4). It does not validate n; call Decode to find out
// whether n is actually a valid encoded length.
func DecodedLength(n int) int {
	return encoding.DecodedLen(n)
}

// Encode fills dst with the Base64 encoding of src, in one pass, writing
// exactly EncodedLength(len(src)) bytes. dst must be at least that long.
// It returns the number of bytes written.
func Encode(dst, src []byte) int {
	encoding.Encode(dst, src)
	return EncodedLength(len(src))
}

// EncodeToString returns the Base64 encoding of src as a string.
func EncodeToString(src []byte) string {
	return encoding.EncodeToString(src)
}

// Decode fills dst with the decoded bytes of src and returns the number of
// bytes written. dst must be at least DecodedLength(len(src)) bytes long.
//
// Decode accepts input lengths congruent to 0, 2, or 3 mod 4; a length
// congruent to 1 mod 4 is malformed by construction (it cannot represent a
// whole number of bytes) and, like any non-alphabet byte in src, yields
// ErrMalformedBase64. Decode is variable-time: it is used only on public
// values (public keys, signatures), never on secrets.
func Decode(dst, src []byte) (int, error) {
	if len(src)%4 == 1 {
		return 0, olmcrypto.Errorf("obase64.Decode", olmcrypto.ErrMalformedBase64)
	}
	// encoding/base64 silently skips CR and LF; reject them like any other
	// non-alphabet byte.
	if bytes.IndexAny(src, "\r\n") >= 0 {
		return 0, olmcrypto.Errorf("obase64.Decode", olmcrypto.ErrMalformedBase64)
	}
	n, err := encoding.Decode(dst, src)
	if err != nil {
		return 0, olmcrypto.Errorf("obase64.Decode", olmcrypto.ErrMalformedBase64)
	}
	return n, nil
}

// DecodeString decodes s and returns the resulting bytes, or
// ErrMalformedBase64 if s is not valid canonical Olm Base64.
func DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedLength(len(s)))
	n, err := Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
