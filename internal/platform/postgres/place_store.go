package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
	"github.com/google/uuid"
)

const placeColumns = `id, title, description, address, lat, lng, image, creator_id, created_at, updated_at`

// PostgresPlaceStore implements the store.PlaceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPlaceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPlaceStore creates a new PostgreSQL implementation of the PlaceStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPlaceStore(db store.DBTX, logger *slog.Logger) *PostgresPlaceStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse is a programming error
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPlaceStore{
		db:     db,
		logger: logger.With(slog.String("component", "place_store")),
	}
}

// Ensure PostgresPlaceStore implements store.PlaceStore interface
var _ store.PlaceStore = (*PostgresPlaceStore)(nil)

// WithTx implements store.PlaceStore.WithTx.
func (s *PostgresPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	return &PostgresPlaceStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.PlaceStore.Create.
// Returns store.ErrInvalidEntity if the creator does not exist.
func (s *PostgresPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during create",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	query := `
		INSERT INTO places (` + placeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		place.ID,
		place.Title,
		place.Description,
		place.Address,
		place.Location.Lat,
		place.Location.Lng,
		place.Image,
		place.CreatorID,
		place.CreatedAt,
		place.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()),
			slog.String("creator_id", place.CreatorID.String()))
		return store.NewStoreError("place", "create", "insert failed", MapError(err))
	}

	log.Info("place created successfully",
		slog.String("place_id", place.ID.String()),
		slog.String("creator_id", place.CreatorID.String()))
	return nil
}

// GetByID implements store.PlaceStore.GetByID.
func (s *PostgresPlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving place by ID", slog.String("place_id", id.String()))

	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`
	place, err := scanPlace(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("place not found", slog.String("place_id", id.String()))
			return nil, store.ErrPlaceNotFound
		}
		log.Error("failed to get place by ID",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return nil, store.NewStoreError("place", "get", "query failed", MapError(err))
	}

	return place, nil
}

// ListByCreator implements store.PlaceStore.ListByCreator.
func (s *PostgresPlaceStore) ListByCreator(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + placeColumns + ` FROM places WHERE creator_id = $1 ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list places",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("place", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	places := []*domain.Place{}
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			log.Error("failed to scan place row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("place", "list", "scan failed", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating place rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("place", "list", "row iteration failed", err)
	}

	log.Debug("listed places",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(places)))
	return places, nil
}

// Update implements store.PlaceStore.Update.
// Only title and description are written.
func (s *PostgresPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidatePlaceDetails(place.Title, place.Description); err != nil {
		return err
	}

	query := `
		UPDATE places
		SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		place.ID,
		place.Title,
		place.Description,
		place.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return store.NewStoreError("place", "update", "update failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrPlaceNotFound); err != nil {
		return err
	}

	log.Info("place updated successfully", slog.String("place_id", place.ID.String()))
	return nil
}

// Delete implements store.PlaceStore.Delete.
func (s *PostgresPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete place",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return store.NewStoreError("place", "delete", "delete failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrPlaceNotFound); err != nil {
		return err
	}

	log.Info("place deleted successfully", slog.String("place_id", id.String()))
	return nil
}

func scanPlace(row rowScanner) (*domain.Place, error) {
	var place domain.Place
	if err := row.Scan(
		&place.ID,
		&place.Title,
		&place.Description,
		&place.Address,
		&place.Location.Lat,
		&place.Location.Lng,
		&place.Image,
		&place.CreatorID,
		&place.CreatedAt,
		&place.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &place, nil
}
