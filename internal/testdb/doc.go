//go:build integration

// Package testdb provides helpers for tests that run against a real PostgreSQL
// database. Tests using it are compiled only with the integration build tag:
//
//	PLACES_TEST_DATABASE_URL=postgres://... go test -tags=integration ./...
//
// GetTestDB applies the embedded migrations once per process and WithTx runs a
// test body inside a transaction that is always rolled back, so tests can share
// one database without seeing each other's rows.
package testdb
