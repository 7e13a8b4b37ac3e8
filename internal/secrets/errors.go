package secrets

import "errors"

// ErrNotFound is returned by [Store.Get] when no secret is stored under
// the requested key. Distinct from a decryption failure: a caller that
// sees ErrNotFound may prompt for credentials, a caller that sees
// [crypto.ErrDecryptionFailed] must not.
var ErrNotFound = errors.New("secret not found")
