// Package store defines the persistence interfaces consumed by the API
// layer and the sentinel errors every implementation must surface. The
// concrete PostgreSQL implementations live in internal/platform/postgres.
package store
