package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: true},
		{name: "ErrPlaceNotFound", err: ErrPlaceNotFound, expected: true},
		{
			name:     "wrapped ErrPlaceNotFound",
			err:      fmt.Errorf("failed to find place: %w", ErrPlaceNotFound),
			expected: true,
		},
		{name: "ErrEmailExists", err: ErrEmailExists, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: true},
		{name: "ErrEmailExists", err: ErrEmailExists, expected: true},
		{
			name:     "wrapped ErrEmailExists",
			err:      fmt.Errorf("failed to create user: %w", ErrEmailExists),
			expected: true,
		},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDuplicateError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	originalErr := errors.New("database connection failed")
	storeErr := NewStoreError("place", "delete", "database error", originalErr)

	assert.Equal(t,
		"delete operation on place failed: database error: database connection failed",
		storeErr.Error())
	assert.ErrorIs(t, storeErr, originalErr)

	var target *StoreError
	assert.True(t, errors.As(fmt.Errorf("outer: %w", storeErr), &target))
	assert.Equal(t, "place", target.Entity)

	bare := NewStoreError("user", "create", "validation failed", nil)
	assert.Equal(t, "create operation on user failed: validation failed", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
