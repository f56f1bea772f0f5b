package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired. It wraps ErrInvalidToken so
	// callers that only care about validity can match either.
	ErrExpiredToken = fmt.Errorf("%w: token has expired", ErrInvalidToken)

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrHashing indicates the password digest could not be computed.
	ErrHashing = errors.New("could not hash password")

	// ErrMalformedHash indicates a stored digest is not a valid bcrypt hash.
	ErrMalformedHash = errors.New("malformed password hash")
)
