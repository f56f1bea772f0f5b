package postgres_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	userCols  = []string{"id", "name", "email", "password_hash", "image", "array_to_json", "created_at", "updated_at"}
	placeCols = []string{"id", "title", "description", "address", "lat", "lng", "image", "creator_id", "created_at", "updated_at"}
	testNow   = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Max", "Max@Test.com", "$2a$04$digest", "uploads/images/max.png")
	require.NoError(t, err)
	return user
}

func testPlace(t *testing.T, creator uuid.UUID) *domain.Place {
	t.Helper()
	place, err := domain.NewPlace(
		"Empire State Building",
		"One of the most famous sky scrapers in the world!",
		"20 W 34th St, New York, NY 10001",
		domain.Location{Lat: 40.7484474, Lng: -73.9871516},
		"uploads/images/esb.png",
		creator,
	)
	require.NoError(t, err)
	return place
}
