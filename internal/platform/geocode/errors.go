package geocode

import "errors"

// Error definitions for the geocode package.
var (
	// ErrInvalidConfig is returned by NewClient when required settings are missing.
	ErrInvalidConfig = errors.New("invalid geocoding configuration")

	// ErrRequestRejected is returned when the API refuses the request
	// (REQUEST_DENIED, INVALID_REQUEST or a 4xx response).
	ErrRequestRejected = errors.New("geocoding request rejected")

	// ErrInvalidResponse is returned when the response body cannot be decoded
	// or carries an unknown status.
	ErrInvalidResponse = errors.New("invalid geocoding response")

	// ErrTransientFailure is returned when retries are exhausted or the
	// context ends while waiting to retry.
	ErrTransientFailure = errors.New("transient geocoding failure")
)
