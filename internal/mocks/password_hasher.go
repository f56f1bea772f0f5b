package mocks

import (
	"errors"
	"strings"

	"github.com/RoxyKang/share-my-place-backend/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher with a reversible scheme
// ("hashed:" + plaintext) so tests can run without bcrypt's cost.
type MockPasswordHasher struct {
	// HashErr and VerifyErr replace the default behaviour when set.
	HashErr   error
	VerifyErr error

	// HashCallCount tracks how many times Hash was called
	HashCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

const mockHashPrefix = "hashed:"

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(plaintext string) (string, error) {
	m.HashCallCount++
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return mockHashPrefix + plaintext, nil
}

// Verify implements auth.PasswordHasher.
func (m *MockPasswordHasher) Verify(plaintext, digest string) (bool, error) {
	if m.VerifyErr != nil {
		return false, m.VerifyErr
	}
	if !strings.HasPrefix(digest, mockHashPrefix) {
		return false, errors.Join(auth.ErrMalformedHash, errors.New("missing mock prefix"))
	}
	return digest == mockHashPrefix+plaintext, nil
}
