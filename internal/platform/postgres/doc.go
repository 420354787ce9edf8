// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces. Each store accepts a store.DBTX so it can run
// against a *sql.DB or inside a transaction, and maps driver errors to
// the sentinel errors defined in the store package.
package postgres
