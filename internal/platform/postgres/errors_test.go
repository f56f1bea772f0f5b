package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/postgres"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func newPgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "places",
		ConstraintName: constraint,
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	generic := errors.New("connection reset")
	serialization := newPgError("40001", "")

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "no rows", err: sql.ErrNoRows, wantErr: store.ErrNotFound},
		{name: "unique violation", err: newPgError("23505", "places_pkey"), wantErr: store.ErrDuplicate},
		{name: "email taken", err: newPgError("23505", "users_email_key"), wantErr: store.ErrEmailExists},
		{
			name:    "foreign key violation",
			err:     newPgError("23503", "places_creator_id_fkey"),
			wantErr: store.ErrInvalidEntity,
		},
		{name: "check violation", err: newPgError("23514", "places_description_check"), wantErr: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502", ""), wantErr: store.ErrInvalidEntity},
		{
			name:    "wrapped email violation",
			err:     fmt.Errorf("exec: %w", newPgError("23505", "users_email_key")),
			wantErr: store.ErrEmailExists,
		},
		{name: "unmapped code passes through", err: serialization, wantErr: serialization},
		{name: "other error passes through", err: generic, wantErr: generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, postgres.MapError(tt.err), tt.wantErr)
		})
	}

	assert.NoError(t, postgres.MapError(nil))

	pgErr := newPgError("23514", "places_description_check")
	mapped := postgres.MapError(pgErr)
	assert.ErrorIs(t, mapped, pgErr)
	assert.Contains(t, mapped.Error(), "constraint places_description_check")
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   sql.Result
		notFound error
		wantErr  error
	}{
		{name: "one row", result: sqlmock.NewResult(0, 1)},
		{name: "no rows default", result: sqlmock.NewResult(0, 0), wantErr: store.ErrNotFound},
		{
			name:     "no rows specific",
			result:   sqlmock.NewResult(0, 0),
			notFound: store.ErrPlaceNotFound,
			wantErr:  store.ErrPlaceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := postgres.CheckRowsAffected(tt.result, tt.notFound)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Error(t, postgres.CheckRowsAffected(nil, nil))
	assert.Error(t, postgres.CheckRowsAffected(sqlmock.NewErrorResult(errors.New("boom")), nil))
}
