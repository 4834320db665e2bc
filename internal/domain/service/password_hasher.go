// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrMalformedCredential is returned when a stored credential is not "<salt>:<hash>".
var ErrMalformedCredential = errors.New("malformed stored credential")

// PasswordHasher defines salted password hashing and verification.
type PasswordHasher interface {
	// Hash digests the password with the given salt. An empty salt makes the hasher
	// generate a fresh random one. It returns the hex digest and the salt used.
	Hash(password, salt string) (hash string, usedSalt string, err error)

	// Verify recomputes the digest for password and salt and compares it with hash.
	Verify(password, hash, salt string) bool

	// Encode joins salt and hash into the stored credential field.
	Encode(salt, hash string) string

	// Decode splits a stored credential field into salt and hash.
	// It returns ErrMalformedCredential when the field is not "<salt>:<hash>".
	Decode(stored string) (salt string, hash string, err error)
}
