package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
)

// MockGeocoder implements service.Geocoder for testing
type MockGeocoder struct {
	ResolveFn func(ctx context.Context, address string) (domain.Location, error)

	// Default response values
	Location domain.Location
	Err      error

	// Addresses records every address passed to Resolve
	Addresses []string
}

// Resolve implements service.Geocoder.
func (m *MockGeocoder) Resolve(ctx context.Context, address string) (domain.Location, error) {
	m.Addresses = append(m.Addresses, address)
	if m.ResolveFn != nil {
		return m.ResolveFn(ctx, address)
	}
	return m.Location, m.Err
}

// MockImageStore implements the image store used by handlers and services.
type MockImageStore struct {
	mu sync.Mutex

	SaveFn func(ctx context.Context, r io.Reader) (string, error)

	// Default response values
	Path      string
	SaveErr   error
	DeleteErr error

	// Deleted records every path passed to Delete
	Deleted []string
}

// Save implements the image store Save operation.
func (m *MockImageStore) Save(ctx context.Context, r io.Reader) (string, error) {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	if m.SaveErr != nil {
		return "", m.SaveErr
	}
	return m.Path, nil
}

// Delete implements the image store Delete operation.
func (m *MockImageStore) Delete(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, path)
	return m.DeleteErr
}

// DeletedPaths returns a copy of the paths passed to Delete.
func (m *MockImageStore) DeletedPaths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Deleted...)
}
