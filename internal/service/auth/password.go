package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns plaintext passwords into one-way digests and checks
// candidates against them.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext. Equal inputs yield different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext produced digest. A mismatch is (false, nil);
	// a digest that is not a valid hash yields ErrMalformedHash.
	Verify(plaintext, digest string) (bool, error)
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext equivalent.
	// Returns nil on success, or an error on failure (e.g., mismatch).
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher and PasswordVerifier using bcrypt.
type BcryptHasher struct {
	cost int
}

var (
	_ PasswordHasher   = (*BcryptHasher)(nil)
	_ PasswordVerifier = (*BcryptHasher)(nil)
)

// NewBcryptHasher creates a BcryptHasher with the given cost.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Cost returns the work factor used for new digests.
func (h *BcryptHasher) Cost() int {
	return h.cost
}

// Hash implements PasswordHasher.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashing, err)
	}
	return string(digest), nil
}

// Verify implements PasswordHasher.
func (h *BcryptHasher) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
