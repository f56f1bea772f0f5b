package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pressly/goose/v3"
)

// Migrations holds the goose SQL migrations that create the schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const migrationsDir = "migrations"

// MigrationCommands lists the goose commands RunMigrations accepts.
var MigrationCommands = []string{"up", "down", "status", "version", "redo"}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements goose.Logger by forwarding messages at INFO.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements goose.Logger. It logs at ERROR and does not exit; the
// error is returned from RunMigrations instead.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// RunMigrations applies command to db using the embedded migrations.
func RunMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !slices.Contains(MigrationCommands, command) {
		return fmt.Errorf("unsupported migration command %q (expected one of %v)", command, MigrationCommands)
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "migrations"), slog.String("command", command))

	goose.SetBaseFS(Migrations)
	goose.SetLogger(&slogGooseLogger{logger: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	log.Info("running migrations")
	if err := goose.RunContext(ctx, command, db, migrationsDir); err != nil {
		log.Error("migration failed", slog.String("error", err.Error()))
		return fmt.Errorf("goose %s failed: %w", command, err)
	}
	log.Info("migrations finished")
	return nil
}
