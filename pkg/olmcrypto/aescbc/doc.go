// Package aescbc implements AES-256 in CBC mode with PKCS#7 padding.
//
// Encryption always appends a full block of padding, even when the
// plaintext is already block-aligned, so CiphertextLength(n) = n + 16 -
// (n mod 16) for every n including 0.
//
// # Design rationale
//
// This package provides no authentication. Callers must compute an HMAC
// over (IV || ciphertext) — see pkg/olmcrypto/hashkdf — and verify it in
// constant time via pkg/olmcrypto/securemem.ConstantTimeEqual before ever
// calling Decrypt. Decrypt's padding-tail check is a distinguishable
// failure signal; without an externally verified MAC gating it, that
// signal is a padding oracle. This split mirrors the Olm wire format,
// where the HMAC lives in the message envelope, not in this layer.
package aescbc
