package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ContextKey is the type of keys this package stores in a request context.
type ContextKey string

const (
	// RequestContextKey holds the authenticated caller set by the auth middleware.
	RequestContextKey ContextKey = "requestContext"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// RequestContext identifies the authenticated caller of a request.
type RequestContext struct {
	UserID uuid.UUID
	Email  string
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, RequestContextKey, rc)
}

// RequestContextFrom returns the authenticated caller stored in ctx.
// ok is false when the request was not authenticated.
func RequestContextFrom(ctx context.Context) (RequestContext, bool) {
	rc, ok := ctx.Value(RequestContextKey).(RequestContext)
	if !ok || rc.UserID == uuid.Nil {
		return RequestContext{}, false
	}
	return rc, true
}

// SetTraceID adds a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns a random 32-character hex string.
// If crypto/rand fails it falls back to a time-based ID.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		slog.Error("failed to generate secure random trace ID",
			slog.String("error", err.Error()),
			slog.String("fallback", "time-based generation"))
		return fallbackTraceID(time.Now())
	}
	return hex.EncodeToString(b)
}

func fallbackTraceID(now time.Time) string {
	b := make([]byte, TraceIDLength)
	binary.BigEndian.PutUint64(b[:8], uint64(now.UnixNano()))
	binary.BigEndian.PutUint32(b[8:12], uint32(now.Nanosecond()))
	binary.BigEndian.PutUint32(b[12:16], uint32(now.Unix()))
	return hex.EncodeToString(b)
}
