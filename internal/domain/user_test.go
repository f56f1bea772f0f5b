package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("  Jane Doe ", "  Jane@Example.COM ", "$2a$10$hash", "uploads/images/a.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if user.Name != "Jane Doe" {
		t.Errorf("Expected trimmed name, got %q", user.Name)
	}
	if user.Email != "jane@example.com" {
		t.Errorf("Expected normalized email, got %q", user.Email)
	}
	if user.Places == nil || len(user.Places) != 0 {
		t.Errorf("Expected empty non-nil places, got %v", user.Places)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
}

func TestNewUser_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		uname   string
		email   string
		hash    string
		image   string
		wantErr error
	}{
		{"empty name", " ", "a@b.co", "hash", "img.png", ErrEmptyName},
		{"empty email", "n", "", "hash", "img.png", ErrEmptyEmail},
		{"bad email", "n", "invalidemail", "hash", "img.png", ErrInvalidEmail},
		{"empty hash", "n", "a@b.co", "", "img.png", ErrEmptyHashedPassword},
		{"empty image", "n", "a@b.co", "hash", "", ErrEmptyImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.uname, tt.email, tt.hash, tt.image)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected error to match ErrValidation, got %v", err)
			}
		})
	}
}

func TestUserHasPlace(t *testing.T) {
	placeID := uuid.New()
	user := User{Places: []uuid.UUID{uuid.New(), placeID}}

	if !user.HasPlace(placeID) {
		t.Error("Expected user to have place")
	}
	if user.HasPlace(uuid.New()) {
		t.Error("Expected user not to have unknown place")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("Expected %v, got %v", ErrPasswordTooShort, err)
	}
	if err := ValidatePassword(strings.Repeat("a", 73)); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("Expected %v, got %v", ErrPasswordTooLong, err)
	}
	if err := ValidatePassword("123456"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("email", "has invalid format", nil)
	if err.Error() != "email has invalid format" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("Expected default wrapped error to be ErrValidation")
	}
}
