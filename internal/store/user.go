package store

import (
	"context"
	"database/sql"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/google/uuid"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The user must already carry a hashed password.
	// Returns ErrEmailExists if the normalized email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email; the lookup is case-insensitive.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]*domain.User, error)

	// AddPlace appends placeID to the user's place list.
	// Returns ErrUserNotFound if the user does not exist.
	//
	// IMPORTANT: must run in the same transaction as the place insert
	// (see WithTx and RunInTransaction).
	AddPlace(ctx context.Context, userID, placeID uuid.UUID) error

	// RemovePlace removes placeID from the user's place list.
	// Returns ErrUserNotFound if the user does not exist.
	//
	// IMPORTANT: must run in the same transaction as the place delete.
	RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
