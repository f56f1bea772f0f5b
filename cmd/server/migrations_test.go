package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMigrations_UnknownCommand(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = handleMigrations(context.Background(), db, "sideways", slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown migration command "sideways"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
