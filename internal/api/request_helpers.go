package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/RoxyKang/share-my-place-backend/internal/api/shared"
	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/imagestore"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/RoxyKang/share-my-place-backend/internal/redact"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ImageFormField is the multipart field carrying the uploaded image.
const ImageFormField = "image"

// multipartOverhead is the room left for text fields and part headers on top
// of the image size limit.
const multipartOverhead = 64 << 10

// ImageStore saves uploaded images and removes them again.
type ImageStore interface {
	Save(ctx context.Context, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// requireCaller returns the authenticated caller, writing a 401 response when
// the request carries none.
func requireCaller(w http.ResponseWriter, r *http.Request) (shared.RequestContext, bool) {
	rc, ok := shared.RequestContextFrom(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn("caller not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, MsgAuthFailed)
		return shared.RequestContext{}, false
	}
	return rc, true
}

// parseMultipart parses a multipart form whose file parts may hold up to
// maxImageBytes.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxImageBytes int64) error {
	limit := maxImageBytes + multipartOverhead
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return imagestore.ErrTooLarge
		}
		return domain.NewValidationError("form", "is not valid multipart data", domain.ErrValidation)
	}
	return nil
}

// saveUploadedImage stores the image part of a parsed multipart form.
func saveUploadedImage(r *http.Request, images ImageStore) (string, error) {
	file, _, err := r.FormFile(ImageFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", domain.NewValidationError(ImageFormField, "is required", domain.ErrValidation)
		}
		return "", fmt.Errorf("read image part: %w", err)
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	return images.Save(r.Context(), file)
}

// discardUpload removes an image saved for a request that later failed.
func discardUpload(ctx context.Context, images ImageStore, path string) {
	if path == "" {
		return
	}
	if err := images.Delete(ctx, path); err != nil {
		logger.FromContext(ctx).Warn("failed to remove uploaded image",
			slog.String("error", redact.Error(err)))
	}
}

// cleanupMultipart removes temporary files created while parsing the form.
func cleanupMultipart(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}
