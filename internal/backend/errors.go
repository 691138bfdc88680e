package backend

import "github.com/matrix-org/olm-crypto-go/pkg/olmcrypto"

// ErrNotBuilt reports that the platform backend was selected but no native
// library was linked into this build. It is olmcrypto.ErrBackendNotBuilt, so
// callers of the public packages can match it with errors.Is.
var ErrNotBuilt = olmcrypto.ErrBackendNotBuilt
