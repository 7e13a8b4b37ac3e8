package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match them.
var (
	// ErrSettingNotFound is returned when a settings lookup matches no row.
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrSecretNotFound is returned when a secret lookup matches no row.
	// Distinct from a decryption failure, which is raised a layer above.
	ErrSecretNotFound = errors.New("secret was not found")
)

// Low-level database operation errors. Repository methods wrap these
// around the driver error when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails, typically
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
