package domain

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// User validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrEmptyImage          = errors.New("image cannot be empty")
)

const (
	// MinPasswordLength is the shortest accepted plaintext password.
	MinPasswordLength = 6

	// MaxPasswordLength is bcrypt's input limit.
	MaxPasswordLength = 72
)

var emailValidator = validator.New()

// User represents a registered user of the places application.
type User struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	HashedPassword string      `json:"-"` // Never expose password hash in JSON
	Image          string      `json:"image"`
	Places         []uuid.UUID `json:"places"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewUser creates a new User from an already hashed password.
// The email is normalized and the places list starts empty.
func NewUser(name, email, hashedPassword, image string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(name),
		Email:          NormalizeEmail(email),
		HashedPassword: hashedPassword,
		Image:          image,
		Places:         []uuid.UUID{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrEmptyUserID)
	}
	if strings.TrimSpace(u.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyName)
	}
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if u.HashedPassword == "" {
		return NewValidationError("password", "hash cannot be empty", ErrEmptyHashedPassword)
	}
	if u.Image == "" {
		return NewValidationError("image", "cannot be empty", ErrEmptyImage)
	}
	return nil
}

// HasPlace reports whether placeID is in the user's place list.
func (u *User) HasPlace(placeID uuid.UUID) bool {
	return slices.Contains(u.Places, placeID)
}

// NormalizeEmail trims and lower-cases an email so that lookups and the
// uniqueness constraint are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that email is present and well formed.
func ValidateEmail(email string) error {
	if email == "" {
		return NewValidationError("email", "cannot be empty", ErrEmptyEmail)
	}
	if err := emailValidator.Var(email, "email"); err != nil {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}
	return nil
}

// ValidatePassword checks plaintext password length before hashing.
func ValidatePassword(password string) error {
	switch {
	case len(password) < MinPasswordLength:
		return NewValidationError("password", "is too short", ErrPasswordTooShort)
	case len(password) > MaxPasswordLength:
		return NewValidationError("password", "is too long", ErrPasswordTooLong)
	}
	return nil
}
