// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"strings"

	"portal/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// SaltBytes is the amount of entropy drawn for each generated salt.
	SaltBytes = 16

	credentialSeparator = ":"
)

// saltedHasher digests salt ‖ password with SHA-256.
// The digest is fast on purpose: existing credentials were stored this way.
type saltedHasher struct {
	entropy io.Reader
}

// NewSaltedHasher is the constructor for saltedHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSaltedHasher() service.PasswordHasher {
	return &saltedHasher{entropy: rand.Reader}
}

// NewSaltedHasherWithEntropy builds a hasher that draws salts from the given reader.
func NewSaltedHasherWithEntropy(entropy io.Reader) service.PasswordHasher {
	return &saltedHasher{entropy: entropy}
}

// Hash digests the password with salt, generating a hex salt when none is supplied.
func (h *saltedHasher) Hash(password, salt string) (string, string, error) {
	if salt == "" {
		generated, err := h.newSalt()
		if err != nil {
			return "", "", err
		}
		salt = generated
	}

	return digest(salt, password), salt, nil
}

// Verify compares the recomputed digest against the stored hash.
func (h *saltedHasher) Verify(password, hash, salt string) bool {
	computed := digest(salt, password)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

// Encode joins salt and hash as "<salt>:<hash>".
func (h *saltedHasher) Encode(salt, hash string) string {
	return salt + credentialSeparator + hash
}

// Decode splits "<salt>:<hash>". Both parts must be present and there must be exactly one separator.
func (h *saltedHasher) Decode(stored string) (string, string, error) {
	parts := strings.Split(stored, credentialSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", service.ErrMalformedCredential
	}

	return parts[0], parts[1], nil
}

func (h *saltedHasher) newSalt() (string, error) {
	buf := make([]byte, SaltBytes)
	if _, err := io.ReadFull(h.entropy, buf); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	return hex.EncodeToString(buf), nil
}

func digest(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))

	return hex.EncodeToString(sum[:])
}
