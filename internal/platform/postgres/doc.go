// Package postgres provides the PostgreSQL implementations of the interfaces
// in internal/store, the mapping of driver errors to store errors, and the
// embedded goose migrations that create the schema they rely on.
package postgres
