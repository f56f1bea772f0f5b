// Package domain contains the core business entities of the places application:
// users, the places they share, and the geographic location attached to each
// place. It also holds the validation rules those entities must satisfy before
// they are persisted, independent of any storage or delivery mechanism.
package domain
