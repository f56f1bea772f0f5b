package mocks

import (
	"context"
	"database/sql"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserStore is a mock of store.UserStore interface for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

// Create is a mock implementation of store.UserStore.Create
func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByID is a mock implementation of store.UserStore.GetByID
func (m *TestifyMockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByEmail is a mock implementation of store.UserStore.GetByEmail
func (m *TestifyMockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of store.UserStore.List
func (m *TestifyMockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*domain.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

// AddPlace is a mock implementation of store.UserStore.AddPlace
func (m *TestifyMockUserStore) AddPlace(ctx context.Context, userID, placeID uuid.UUID) error {
	args := m.Called(ctx, userID, placeID)
	return args.Error(0)
}

// RemovePlace is a mock implementation of store.UserStore.RemovePlace
func (m *TestifyMockUserStore) RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error {
	args := m.Called(ctx, userID, placeID)
	return args.Error(0)
}

// WithTx is a mock implementation of store.UserStore.WithTx.
// Calls made through the transaction-scoped store are recorded on this mock.
func (m *TestifyMockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
