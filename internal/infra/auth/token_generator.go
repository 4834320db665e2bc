package auth

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	"portal/internal/domain/service"

	"github.com/pkg/errors"
)

// TokenBytes is the entropy of a session token (256 bits).
const TokenBytes = 32

// randomTokenGenerator encodes random bytes as unpadded base64url.
// Uniqueness rests on entropy alone; the store is never consulted.
type randomTokenGenerator struct {
	entropy io.Reader
}

// NewTokenGenerator is the constructor for randomTokenGenerator.
func NewTokenGenerator() service.TokenGenerator {
	return &randomTokenGenerator{entropy: rand.Reader}
}

// NewTokenGeneratorWithEntropy builds a generator that reads from the given source.
func NewTokenGeneratorWithEntropy(entropy io.Reader) service.TokenGenerator {
	return &randomTokenGenerator{entropy: entropy}
}

// Generate returns a 43 character URL-safe token.
func (g *randomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := io.ReadFull(g.entropy, buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
