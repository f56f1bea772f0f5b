// Package geocode resolves postal addresses to coordinates using the Google
// Geocoding JSON API.
//
// The package is an infrastructure adapter: Client satisfies service.Geocoder
// and hides the HTTP exchange from the place service.
//
// Key behavior:
//
//   - ZERO_RESULTS and empty result lists become domain.ErrAddressNotFound.
//   - Transient failures (transport errors, HTTP 5xx, OVER_QUERY_LIMIT,
//     UNKNOWN_ERROR) are retried with exponential backoff and jitter.
//   - Rejected requests (REQUEST_DENIED, INVALID_REQUEST) fail immediately.
//   - Every call is bounded by the configured timeout.
package geocode
