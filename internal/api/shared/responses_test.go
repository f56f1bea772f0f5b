package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithLogger(t *testing.T, buf *bytes.Buffer) *http.Request {
	t.Helper()
	log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := logger.WithContext(SetTraceID(context.Background()), log)
	return httptest.NewRequest(http.MethodGet, "/api/places/123", nil).WithContext(ctx)
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, r, http.StatusCreated, map[string]string{"message": "Deleted place."})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Deleted place."}`, w.Body.String())
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := requestWithLogger(t, &buf)
	w := httptest.NewRecorder()

	RespondWithError(w, r, http.StatusNotFound, "Could not find this route.")

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Could not find this route.", resp.Error)
	assert.Equal(t, GetTraceID(r.Context()), resp.TraceID)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "unauthorized", status: http.StatusUnauthorized, wantLevel: "WARN"},
		{name: "forbidden", status: http.StatusForbidden, wantLevel: "WARN"},
		{name: "not found", status: http.StatusNotFound, wantLevel: "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := requestWithLogger(t, &buf)
			w := httptest.NewRecorder()

			secret := errors.New("pq: password authentication failed for postgres://admin:hunter2@db:5432/places")
			RespondWithErrorAndLog(w, r, tt.status, "An unknown error occurred!", secret)

			assert.Equal(t, tt.status, w.Code)
			assert.NotContains(t, w.Body.String(), "hunter2")
			assert.NotContains(t, w.Body.String(), "postgres://")
			assert.Contains(t, w.Body.String(), "An unknown error occurred!")

			logged := buf.String()
			assert.Contains(t, logged, `"level":"`+tt.wantLevel+`"`)
			assert.NotContains(t, logged, "hunter2")
		})
	}
}
