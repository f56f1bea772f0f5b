package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token containing the user's ID and email.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns ErrExpiredToken for expired tokens and ErrInvalidToken for
	// anything else that fails verification.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// TokenLifetime reports how long newly issued tokens stay valid.
	TokenLifetime() time.Duration
}

// Claims represents the custom claims structure for the JWT tokens.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Email is the user's normalized email at the time of issue.
	Email string `json:"email,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
