package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
	"github.com/google/uuid"
)

// userColumns is shared by every user query; place_ids is read as JSON so it
// scans through database/sql without driver-specific array types.
const userColumns = `id, name, email, password_hash, image,
		array_to_json(place_ids), created_at, updated_at`

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse is a programming error
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create.
// Returns store.ErrEmailExists if the email is already registered.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, image, place_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, '{}', $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		domain.NormalizeEmail(user.Email),
		user.HashedPassword,
		user.Image,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrEmailExists) {
			log.Debug("email already registered", slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return store.NewStoreError("user", "create", "insert failed", mapped)
	}

	log.Info("user created successfully", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving user by ID", slog.String("user_id", id.String()))

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, store.NewStoreError("user", "get", "query failed", MapError(err))
	}

	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(s.db.QueryRowContext(ctx, query, domain.NormalizeEmail(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get", "query failed", MapError(err))
	}

	return user, nil
}

// List implements store.UserStore.List.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	users := []*domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("user", "list", "scan failed", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating user rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "list", "row iteration failed", err)
	}

	log.Debug("listed users", slog.Int("count", len(users)))
	return users, nil
}

// AddPlace implements store.UserStore.AddPlace.
func (s *PostgresUserStore) AddPlace(ctx context.Context, userID, placeID uuid.UUID) error {
	query := `
		UPDATE users
		SET place_ids = array_append(place_ids, $2), updated_at = NOW()
		WHERE id = $1
	`
	return s.updatePlaces(ctx, "add_place", query, userID, placeID)
}

// RemovePlace implements store.UserStore.RemovePlace.
func (s *PostgresUserStore) RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error {
	query := `
		UPDATE users
		SET place_ids = array_remove(place_ids, $2), updated_at = NOW()
		WHERE id = $1
	`
	return s.updatePlaces(ctx, "remove_place", query, userID, placeID)
}

func (s *PostgresUserStore) updatePlaces(
	ctx context.Context,
	operation, query string,
	userID, placeID uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, query, userID, placeID)
	if err != nil {
		log.Error("failed to update user place list",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("place_id", placeID.String()))
		return store.NewStoreError("user", operation, "update failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Debug("user place list updated",
		slog.String("operation", operation),
		slog.String("user_id", userID.String()),
		slog.String("place_id", placeID.String()))
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var placeIDs []byte

	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.Image,
		&placeIDs,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	places, err := decodeUUIDArray(placeIDs)
	if err != nil {
		return nil, err
	}
	user.Places = places
	return &user, nil
}

// decodeUUIDArray parses the JSON rendering of a uuid[] column.
func decodeUUIDArray(raw []byte) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if len(raw) == 0 || string(raw) == "null" {
		return ids, nil
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode place_ids: %w", err)
	}
	return ids, nil
}
