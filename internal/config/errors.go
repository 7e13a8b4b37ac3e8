package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSecretKeyConfigs indicates missing secret-store key
	// material. Without it every secret operation would fail, so startup
	// is refused instead.
	ErrInvalidSecretKeyConfigs = errors.New("invalid secret key configuration")
	// ErrInvalidTimezone indicates the configured product timezone is not
	// a resolvable IANA name.
	ErrInvalidTimezone = errors.New("invalid timezone configuration")
	// ErrInvalidSyncConfigs indicates out-of-range sync tunables
	// (non-positive horizon, concurrency limit, or provider timeout).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
