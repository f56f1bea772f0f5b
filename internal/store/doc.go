// Package store defines the persistence contracts for users and places.
// Services depend on these interfaces only; the PostgreSQL implementations
// live in internal/platform/postgres. Multi-row writes are composed by the
// caller with RunInTransaction and the WithTx methods of each store.
package store
