package service

import (
	"errors"
	"fmt"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
	"github.com/RoxyKang/share-my-place-backend/internal/service/auth"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the API layer maps each to a status code.
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrInvalidCredentials indicates the password did not match the stored digest.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrGeocoding indicates the address could not be resolved to coordinates.
	// API layer should map this to HTTP 422 Unprocessable Entity.
	ErrGeocoding = errors.New("could not find location for the specified address")

	// ErrTransaction indicates a multi-row write failed and was rolled back.
	// API layer should map this to HTTP 500.
	ErrTransaction = errors.New("transaction failed")
)

// isPassThrough reports whether err is an expected condition that callers match
// directly and that must not be hidden behind a service error type.
func isPassThrough(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, store.ErrNotFound) ||
		errors.Is(err, store.ErrDuplicate) ||
		errors.Is(err, ErrNotOwned) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrGeocoding) ||
		errors.Is(err, ErrTransaction) ||
		errors.Is(err, auth.ErrHashing)
}

// AccountServiceError wraps errors from the account service with context.
type AccountServiceError struct {
	// Operation is the operation that failed (e.g., "sign_up", "login")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for AccountServiceError.
func (e *AccountServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("account service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("account service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AccountServiceError) Unwrap() error {
	return e.Err
}

// NewAccountServiceError wraps err for operation. Expected sentinel errors are
// returned unchanged.
func NewAccountServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if isPassThrough(err) {
		return err
	}
	return &AccountServiceError{Operation: operation, Message: message, Err: err}
}

// PlaceServiceError wraps errors from the place service with context.
type PlaceServiceError struct {
	// Operation is the operation that failed (e.g., "create_place", "delete_place")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for PlaceServiceError.
func (e *PlaceServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("place service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("place service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PlaceServiceError) Unwrap() error {
	return e.Err
}

// NewPlaceServiceError wraps err for operation. Expected sentinel errors are
// returned unchanged.
func NewPlaceServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if isPassThrough(err) {
		return err
	}
	return &PlaceServiceError{Operation: operation, Message: message, Err: err}
}

// transactionError reports a failed multi-row write. Expected conditions
// raised inside the transaction keep their identity; everything else becomes
// ErrTransaction with the cause attached.
func transactionError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if isPassThrough(err) {
		return err
	}
	return &PlaceServiceError{
		Operation: operation,
		Message:   "changes were rolled back",
		Err:       fmt.Errorf("%w: %w", ErrTransaction, err),
	}
}
