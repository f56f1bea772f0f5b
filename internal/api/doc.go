// Package api holds the HTTP handlers for users and places.
//
// Handlers decode and validate requests, store uploaded images, call the
// account and place services and translate their errors into the JSON error
// body with MapErrorToStatusCode and GetSafeErrorMessage. Routing lives in
// cmd/server; reusable request and response helpers live in api/shared.
package api
