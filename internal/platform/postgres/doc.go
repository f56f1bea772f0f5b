// Package postgres provides PostgreSQL implementations of the store.UserStore
// and store.PlaceStore interfaces, the driver error mapping shared by them, and
// the embedded goose migrations that create the schema.
package postgres
