package postgres

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(Migrations, migrationsDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_places.sql"}, names)

	for _, name := range names {
		body, err := fs.ReadFile(Migrations, migrationsDir+"/"+name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

func TestRunMigrations_RejectsUnknownCommand(t *testing.T) {
	t.Parallel()

	err := RunMigrations(context.Background(), nil, "drop-everything", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported migration command")
}

func TestSlogGooseLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := &slogGooseLogger{logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	l.Printf("applied %d", 2)
	l.Fatalf("failed %s", "00002")

	out := buf.String()
	assert.Contains(t, out, `"msg":"applied 2"`)
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"msg":"failed 00002"`)
}
