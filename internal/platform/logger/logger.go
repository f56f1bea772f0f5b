package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/RoxyKang/share-my-place-backend/internal/config"
)

// Setup initializes the application's logging system from configuration.
// It creates a JSON logger writing to stdout, installs it as the slog default
// and returns it.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return SetupWithWriter(os.Stdout, cfg.LogLevel), nil
}

// SetupWithWriter is Setup with an explicit output, used by tests and tools.
func SetupWithWriter(out io.Writer, levelName string) *slog.Logger {
	level, ok := ParseLevel(levelName)
	if !ok {
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", levelName,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// ParseLevel converts a case-insensitive level name into a slog.Level.
// Unknown names yield slog.LevelInfo and false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
