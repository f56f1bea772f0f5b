package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoxyKang/share-my-place-backend/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

const testMaxImageBytes = 1024

// multipartRequest builds a multipart request with the given text fields and,
// when image is non-nil, an image file part.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, image []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		part, err := mw.CreateFormFile(ImageFormField, "upload.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(method, target, &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	r := httptest.NewRequest(method, target, bytes.NewReader(data))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// withURLParams attaches chi route parameters to r.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asCaller marks r as authenticated by userID.
func asCaller(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(shared.WithRequestContext(r.Context(), shared.RequestContext{
		UserID: userID,
		Email:  "max@test.com",
	}))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}
