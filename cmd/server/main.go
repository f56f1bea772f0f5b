// Package main implements the entry point for the places API server, which
// lets users share places with geocoded addresses and images.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/RoxyKang/share-my-place-backend/internal/config"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/spf13/afero"
)

func main() {
	migrate := flag.String("migrate", "", "run a migration command (up, down, status, version, redo) and exit")
	flag.Parse()

	if err := run(*migrate); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and either applies a
// migration command or serves HTTP until SIGINT or SIGTERM.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return handleMigrations(ctx, db, migrateCmd, log)
	}

	app, err := newApplication(cfg, log, db, afero.NewOsFs())
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
