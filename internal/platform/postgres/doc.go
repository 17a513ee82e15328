// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
//
// Stores accept a store.DBTX so they work against either a *sql.DB or a
// *sql.Tx. Every driver error leaves this package through MapError, which
// translates PostgreSQL error codes into the store sentinels the API layer
// understands. The schema lives in migrations/ and is applied with goose
// from an embedded filesystem (see Migrate).
package postgres
