package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/RoxyKang/share-my-place-backend/internal/api/shared"
	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/imagestore"
	"github.com/RoxyKang/share-my-place-backend/internal/service"
	"github.com/RoxyKang/share-my-place-backend/internal/service/auth"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
	"github.com/go-playground/validator/v10"
)

// Client-facing messages.
const (
	MsgUnknown            = "An unknown error occurred!"
	MsgInvalidInputs      = "Invalid inputs passed, please check your data."
	MsgUserExists         = "User exists already, please login instead."
	MsgInvalidCredentials = "Invalid credentials"
	MsgAuthFailed         = "Authentication failed!"
	MsgNotOwned           = "You are not allowed to modify this place."
	MsgGeocoding          = "Could not find location for the specified address."
	MsgUserNotFound       = "Could not find user for the provided id."
	MsgPlaceNotFound      = "Could not find place for the provided id."
	MsgUserPlacesNotFound = "Could not find places for the provided user id."
	MsgInvalidImage       = "Invalid mime type!"
	MsgImageTooLarge      = "Image is too large."
	MsgRouteNotFound      = "Could not find this route."
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case err == nil:
		return http.StatusOK

	// Authentication errors
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Unprocessable input
	case errors.Is(err, domain.ErrValidation),
		errors.As(err, &validationErrs),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, service.ErrGeocoding),
		errors.Is(err, imagestore.ErrUnsupportedType),
		errors.Is(err, imagestore.ErrTooLarge),
		errors.Is(err, imagestore.ErrEmptyUpload),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusUnprocessableEntity

	// Default: internal server error, including service.ErrTransaction and auth.ErrHashing
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnknown
	}

	var validationErr *domain.ValidationError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken):
		return MsgAuthFailed

	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials

	case errors.Is(err, service.ErrNotOwned):
		return MsgNotOwned

	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound

	case errors.Is(err, store.ErrPlaceNotFound):
		return MsgPlaceNotFound

	case errors.Is(err, store.ErrEmailExists):
		return MsgUserExists

	case errors.Is(err, service.ErrGeocoding):
		return MsgGeocoding

	case errors.Is(err, imagestore.ErrUnsupportedType),
		errors.Is(err, imagestore.ErrEmptyUpload):
		return MsgInvalidImage

	case errors.Is(err, imagestore.ErrTooLarge):
		return MsgImageTooLarge

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)

	case errors.As(err, &validationErr):
		// Field and message are fixed strings chosen by the domain package.
		return validationErr.Error()

	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		return MsgInvalidInputs

	default:
		return MsgUnknown
	}
}

// SanitizeValidationError turns validator errors into a short message naming
// the first failing field, without echoing submitted values.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return MsgInvalidInputs
	}
	fe := errs[0]
	return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), validationTagMessage(fe.Tag()))
}

// validationTagMessage maps validation tags to user-friendly error messages
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

// HandleAPIError maps err to a status code and a safe message and writes the
// response. A non-empty fallback replaces the generic message of 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
