package mocks

import (
	"context"
	"database/sql"
	"slices"
	"sync"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
	"github.com/google/uuid"
)

// MockUserStore is an in-memory store.UserStore keyed by normalized email.
type MockUserStore struct {
	mu    sync.Mutex
	Users map[string]*domain.User

	// Errors returned instead of the default behaviour when set.
	CreateError     error
	GetByEmailError error
	ListError       error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore(users ...*domain.User) *MockUserStore {
	m := &MockUserStore{Users: make(map[string]*domain.User)}
	for _, u := range users {
		m.Users[domain.NormalizeEmail(u.Email)] = u
	}
	return m
}

// Count returns the number of stored users.
func (m *MockUserStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Users)
}

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}
	key := domain.NormalizeEmail(user.Email)
	if _, exists := m.Users[key]; exists {
		return store.ErrEmailExists
	}
	clone := *user
	m.Users[key] = &clone
	return nil
}

// GetByEmail implements store.UserStore.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetByEmailError != nil {
		return nil, m.GetByEmailError
	}
	user, ok := m.Users[domain.NormalizeEmail(email)]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.Users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List implements store.UserStore.
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListError != nil {
		return nil, m.ListError
	}
	users := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		clone := *user
		users = append(users, &clone)
	}
	slices.SortFunc(users, func(a, b *domain.User) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return users, nil
}

// AddPlace implements store.UserStore.
func (m *MockUserStore) AddPlace(ctx context.Context, userID, placeID uuid.UUID) error {
	return m.mutatePlaces(userID, func(places []uuid.UUID) []uuid.UUID {
		return append(places, placeID)
	})
}

// RemovePlace implements store.UserStore.
func (m *MockUserStore) RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error {
	return m.mutatePlaces(userID, func(places []uuid.UUID) []uuid.UUID {
		return slices.DeleteFunc(places, func(id uuid.UUID) bool { return id == placeID })
	})
}

// WithTx implements store.UserStore. The in-memory store has no transactions.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

func (m *MockUserStore) mutatePlaces(userID uuid.UUID, fn func([]uuid.UUID) []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.Users {
		if user.ID == userID {
			user.Places = fn(slices.Clone(user.Places))
			return nil
		}
	}
	return store.ErrUserNotFound
}
