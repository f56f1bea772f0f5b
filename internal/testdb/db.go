//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/RoxyKang/share-my-place-backend/internal/platform/postgres"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"
)

// Environment variables consulted for the test database URL, in order.
const (
	EnvTestDatabaseURL = "PLACES_TEST_DATABASE_URL"
	EnvDatabaseURL     = "DATABASE_URL"
)

// TestTimeout bounds connection checks and migrations.
const TestTimeout = 30 * time.Second

var migrateOnce struct {
	sync.Once
	err error
}

// GetTestDatabaseURL returns the first configured database URL, or "".
func GetTestDatabaseURL() string {
	for _, key := range []string{EnvTestDatabaseURL, EnvDatabaseURL} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// GetTestDB opens the test database, applies migrations and registers cleanup.
// The test is skipped when no database URL is configured.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skipf("%s not set, skipping database test", EnvTestDatabaseURL)
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "test database is unreachable")

	migrateOnce.Do(func() {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		migrateOnce.err = postgres.RunMigrations(ctx, db, "up", logger)
	})
	require.NoError(t, migrateOnce.err, "failed to migrate test database")

	return db
}

// WithTx runs fn inside a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err, "failed to begin test transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
