package service

// TokenGenerator mints opaque session tokens.
type TokenGenerator interface {
	// Generate returns a new URL-safe token with at least 256 bits of entropy.
	Generate() (string, error)
}
