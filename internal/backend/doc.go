// Package backend hosts the two interchangeable implementations of the
// asymmetric primitives: a portable one built on Go's own vetted
// cryptography (always available, the default), and a platform one meant
// to delegate to a host cryptographic library (OpenSSL, BoringSSL, a
// hardware module) when the deployment wants bit-identical behavior but a
// different provenance for the arithmetic.
//
// Both backends satisfy the same capability interfaces (Curve25519,
// Ed25519) so pkg/olmcrypto/curve25519 and pkg/olmcrypto/ed25519 select
// between them with a single indirect call made once, outside any hot
// loop, rather than sprinkling build tags through call sites — the shape
// spec.md §9's "Dual-backend compilation" design note asks for.
//
// The platform backend in this module is not yet wired to a real native
// library; its methods return ErrNotBuilt, the same placeholder contract
// the teacher repository's own not-yet-linked cgo bindings use.
package backend
