package entity

import "time"

// Session is a bearer token issued on signup or login.
// UserID is a copy of the user's identity, not a live reference.
type Session struct {
	ID        string    // Store-assigned identity of the session record.
	UserID    string    // Identity of the user the token was issued to.
	Token     string    // Opaque URL-safe token.
	CreatedAt time.Time // UTC issue time.
}

// UserSummary is the minimal user projection returned to API callers.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary projects the user to the fields safe to expose.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
