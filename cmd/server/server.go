package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// startHTTPServer serves router until ctx is cancelled or the listener fails,
// then drains in-flight requests and releases application resources.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	requestTimeout := app.config.Server.RequestTimeout()
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       requestTimeout,
		WriteTimeout:      requestTimeout + 5*time.Second,
		IdleTimeout:       idleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", slog.Int("port", app.config.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		app.logger.Info("shutting down server")
	case err := <-serverErr:
		if err != nil {
			app.logger.Error("server failed", slog.String("error", err.Error()))
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("server shutdown failed", slog.String("error", err.Error()))
		runErr = errors.Join(runErr, fmt.Errorf("server shutdown failed: %w", err))
	}

	app.cleanup()
	return runErr
}
