// Package logging provides the minimal logging facade used by the demo
// CLI. It wraps a subset of log/slog behind a small interface so the CLI
// can be tested against a fake logger and so key material is always
// logged through Redacted rather than printed directly.
//
// The primitive packages under pkg/olmcrypto never import this package:
// they are stateless and do no logging of their own.
package logging
