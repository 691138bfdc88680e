// Package internalcheck holds AST-based policy tests that scan this
// module's own source for secret-handling mistakes a normal compile
// cannot catch: comparing byte slices with == instead of a constant-time
// comparison, and formatting potentially secret values with %x/%X.
//
// It is not part of the public API and exists only to be run as part of
// this module's test suite.
package internalcheck
