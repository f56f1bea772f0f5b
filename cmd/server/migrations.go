package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	"github.com/RoxyKang/share-my-place-backend/internal/platform/postgres"
)

// handleMigrations runs a single goose command against db.
func handleMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !slices.Contains(postgres.MigrationCommands, command) {
		return fmt.Errorf("unknown migration command %q, expected one of %v", command, postgres.MigrationCommands)
	}

	logger.Info("executing migrations", slog.String("command", command))
	if err := postgres.RunMigrations(ctx, db, command, logger); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	logger.Info("migrations finished", slog.String("command", command))
	return nil
}
