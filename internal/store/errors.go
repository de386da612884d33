package store

import "errors"

// Sentinel errors returned by the store. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidValue is returned by Set when the value is not valid JSON.
	ErrInvalidValue = errors.New("value is not valid JSON")

	// ErrStoreNotMigrated is returned when the kv table does not exist.
	ErrStoreNotMigrated = errors.New("store schema is not migrated")

	// ErrUnsupportedDSN is returned when the DSN names no known dialect.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
