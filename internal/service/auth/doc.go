// Package auth implements credential hashing and stateless identity tokens.
//
// BcryptHasher turns plaintext passwords into salted bcrypt digests and checks
// candidates against them. JWTService issues HS256 tokens carrying the user's
// ID and email and validates them on every authenticated request.
package auth
