package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/RoxyKang/share-my-place-backend/internal/api"
	apiMiddleware "github.com/RoxyKang/share-my-place-backend/internal/api/middleware"
	"github.com/RoxyKang/share-my-place-backend/internal/config"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/geocode"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/imagestore"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/postgres"
	"github.com/RoxyKang/share-my-place-backend/internal/service"
	"github.com/RoxyKang/share-my-place-backend/internal/service/auth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService auth.JWTService
	images     *imagestore.Store
	registry   *prometheus.Registry
	metrics    *apiMiddleware.Metrics

	userHandler  *api.UserHandler
	placeHandler *api.PlaceHandler
}

// newApplication wires stores, services and handlers on top of an open database
// connection. fs is where uploaded images are stored.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB, fs afero.Fs) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	userStore := postgres.NewPostgresUserStore(db, logger)
	placeStore := postgres.NewPostgresPlaceStore(db, logger)

	geocoder, err := geocode.NewClient(cfg.Geocoding, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize geocoder: %w", err)
	}

	app.images, err = imagestore.New(fs, cfg.Uploads, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}

	accounts, err := service.NewAccountService(userStore, hasher, app.jwtService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	places, err := service.NewPlaceService(db, placeStore, userStore, geocoder, app.images, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create place service: %w", err)
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "places"),
	)
	app.metrics, err = apiMiddleware.NewMetrics(app.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	app.userHandler = api.NewUserHandler(accounts, app.jwtService, app.images, cfg.Uploads.MaxBytes, logger)
	app.placeHandler = api.NewPlaceHandler(places, app.images, cfg.Uploads.MaxBytes, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
