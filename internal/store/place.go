package store

import (
	"context"
	"database/sql"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/google/uuid"
)

// PlaceStore defines the interface for place data persistence.
type PlaceStore interface {
	// Create saves a new place.
	// Returns ErrInvalidEntity if the creator does not exist (foreign key).
	Create(ctx context.Context, place *domain.Place) error

	// GetByID retrieves a place by its unique ID.
	// Returns ErrPlaceNotFound if the place does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// ListByCreator returns the places created by userID, oldest first.
	// An empty slice (not an error) is returned when there are none.
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]*domain.Place, error)

	// Update persists the title and description of an existing place.
	// Returns ErrPlaceNotFound if the place does not exist.
	Update(ctx context.Context, place *domain.Place) error

	// Delete removes a place by its ID.
	// Returns ErrPlaceNotFound if the place does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new PlaceStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PlaceStore
}
