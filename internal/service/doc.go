// Package service contains the application use cases: the account directory
// (sign up, log in, list users) and the place registry (create, read, update,
// delete places).
//
// Services receive their collaborators through constructor injection: stores
// from internal/store, the credential and token services from service/auth, and
// small consumer-side interfaces for geocoding and image storage. Operations
// that write more than one row run inside store.RunInTransaction so that either
// every write commits or none does.
//
// Expected failures are returned as sentinel errors (ErrNotOwned,
// ErrInvalidCredentials, ErrGeocoding, ErrTransaction, and the store and domain
// sentinels). Unexpected failures are wrapped in AccountServiceError or
// PlaceServiceError. The API layer maps both to HTTP responses.
package service
