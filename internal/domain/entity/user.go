// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered account. Email is unique across all users and is compared
// exactly as stored.
type User struct {
	ID           string    // Store-assigned identity (ObjectID hex or UUID string, depending on the store).
	Name         string    // Display name given at signup.
	Email        string    // Login identifier.
	PasswordHash string    // Stored credential, "<salt>:<hash>" with both parts hex encoded.
	FieldOfStudy *string   // Optional primary focus given at signup.
	Interests    []string  // Topics of interest, empty on signup.
	IsActive     bool      // Accounts are active on creation.
	CreatedAt    time.Time // UTC creation time.
	UpdatedAt    time.Time // UTC time of the last modification.
}

// NewUser builds a fresh, active account with no interests.
func NewUser(name, email, passwordHash string, fieldOfStudy *string, now time.Time) *User {
	now = now.UTC()

	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		FieldOfStudy: fieldOfStudy,
		Interests:    []string{},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
