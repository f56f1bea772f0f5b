package middleware

import (
	"log/slog"
	"net/http"

	"github.com/RoxyKang/share-my-place-backend/internal/api/shared"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
)

// TraceIDHeader echoes the request's trace ID back to the client.
const TraceIDHeader = "X-Trace-ID"

// TraceMiddleware adds a trace ID and a request-scoped logger to the request
// context. It should run before any handler that logs.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := logger.FromContext(ctx).With(slog.String("trace_id", traceID))
		ctx = logger.WithContext(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		w.Header().Set(TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
