// Package logger provides structured logging functionality for the application.
//
// It builds on log/slog with JSON output and a configurable level, and carries
// request-scoped loggers through context.Context so that trace IDs and
// component names follow a request across layers.
package logger
