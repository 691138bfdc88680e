// Package olmcrypto is the cryptographic primitive layer underlying the
// Olm/Megolm end-to-end encryption protocol used by the Matrix messaging
// ecosystem. It provides the small, sharp-edged set of algorithms that
// higher-level session machinery (Double-Ratchet-style Olm sessions,
// Megolm group ratchets, account key management, pickling) composes into
// secure messaging:
//
//   - Curve25519 key agreement (pkg/olmcrypto/curve25519)
//   - Ed25519 signing and verification (pkg/olmcrypto/ed25519)
//   - AES-256-CBC with PKCS#7 padding (pkg/olmcrypto/aescbc)
//   - SHA-256, HMAC-SHA-256, HKDF-SHA-256 (pkg/olmcrypto/hashkdf)
//   - an unpadded Base64 codec (pkg/olmcrypto/obase64)
//   - secure memory handling (pkg/olmcrypto/securemem)
//
// # Scope
//
// This module is exactly the primitive layer plus its supporting
// utilities. Olm/Megolm session state machines, chain/message-key
// derivation schedules, pre-key/one-time-key bookkeeping, account
// pickling, and language bindings all live outside this module and
// consume it through the packages above.
//
// # Concurrency
//
// Every primitive function in this module is stateless and re-entrant. It
// is safe to call any of them concurrently from multiple goroutines
// provided no two calls alias their input or output buffers. There are no
// background goroutines and no blocking operations. The one piece of
// shared mutable state is the backend selection in
// pkg/olmcrypto/curve25519 and pkg/olmcrypto/ed25519: UsePortableBackend
// and UsePlatformBackend set a package-level variable without
// synchronization, so calling them while other goroutines use the same
// package is a data race.
//
// # Security considerations
//
//   - Every function that touches secret material scrubs its scratch
//     buffers via pkg/olmcrypto/securemem before returning, on every exit
//     path.
//   - AES-CBC decryption is not authenticated. Callers must verify an
//     HMAC over (IV || ciphertext) in constant time before calling
//     aescbc.Decrypt; see pkg/olmcrypto/aescbc's package doc.
//   - A Curve25519 shared secret must never be used directly as a key;
//     pass it through pkg/olmcrypto/hashkdf's HKDF before use.
package olmcrypto
