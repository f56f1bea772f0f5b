package imagestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/RoxyKang/share-my-place-backend/internal/config"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

var (
	// ErrUnsupportedType is returned when the upload is not a PNG or JPEG image.
	ErrUnsupportedType = errors.New("invalid mime type")

	// ErrTooLarge is returned when the upload exceeds the configured size limit.
	ErrTooLarge = errors.New("image exceeds size limit")

	// ErrEmptyUpload is returned when the upload has no content.
	ErrEmptyUpload = errors.New("image upload is empty")

	// ErrOutsideStore is returned when a path does not point into the store directory.
	ErrOutsideStore = errors.New("path is outside the image directory")
)

// extensions maps accepted MIME types to the extension of the stored file.
var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpeg",
}

// Store saves and removes images below a single directory.
type Store struct {
	fs       afero.Fs
	dir      string
	maxBytes int64
	logger   *slog.Logger
}

// New creates a Store rooted at cfg.Dir on fs, creating the directory if needed.
// If logger is nil, a default logger will be used.
func New(fs afero.Fs, cfg config.UploadsConfig, logger *slog.Logger) (*Store, error) {
	if fs == nil {
		return nil, errors.New("fs cannot be nil")
	}
	if cfg.MaxBytes <= 0 {
		return nil, fmt.Errorf("max bytes must be positive, got %d", cfg.MaxBytes)
	}
	dir := path.Clean(strings.TrimSpace(cfg.Dir))
	if dir == "." || dir == "" {
		return nil, errors.New("upload directory cannot be empty")
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		fs:       fs,
		dir:      dir,
		maxBytes: cfg.MaxBytes,
		logger:   logger.With(slog.String("component", "image_store")),
	}, nil
}

// Dir returns the directory images are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save stores the image read from r and returns its path, <dir>/<uuid>.<ext>.
func (s *Store) Save(ctx context.Context, r io.Reader) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyUpload
	}
	if int64(len(data)) > s.maxBytes {
		log.Debug("upload rejected: too large", slog.Int64("max_bytes", s.maxBytes))
		return "", ErrTooLarge
	}

	mtype := mimetype.Detect(data)
	ext, ok := extensions[mtype.String()]
	if !ok {
		log.Debug("upload rejected: unsupported type", slog.String("mime_type", mtype.String()))
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mtype.String())
	}

	name := path.Join(s.dir, uuid.NewString()+ext)
	if err := afero.WriteReader(s.fs, name, bytes.NewReader(data)); err != nil {
		log.Error("failed to write image", slog.String("error", err.Error()))
		return "", fmt.Errorf("write image: %w", err)
	}

	log.Debug("image stored",
		slog.String("path", name),
		slog.String("mime_type", mtype.String()),
		slog.Int("bytes", len(data)))
	return name, nil
}

// Delete removes the image at p. Missing files are not an error.
func (s *Store) Delete(ctx context.Context, p string) error {
	name, err := s.resolve(p)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove image: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("image removed", slog.String("path", name))
	return nil
}

// FileSystem exposes the image directory for static serving.
func (s *Store) FileSystem() http.FileSystem {
	return afero.NewHttpFs(s.fs).Dir(s.dir)
}

// resolve cleans p and checks that it names a file directly inside the store directory.
func (s *Store) resolve(p string) (string, error) {
	name := path.Clean(p)
	if path.Dir(name) != s.dir {
		return "", fmt.Errorf("%w: %q", ErrOutsideStore, p)
	}
	return name, nil
}
