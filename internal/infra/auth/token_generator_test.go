package auth

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerator_Generate(t *testing.T) {
	generator := NewTokenGenerator()

	token, err := generator.Generate()
	require.NoError(t, err)

	assert.Len(t, token, 43)
	assert.GreaterOrEqual(t, len(token), 32)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, TokenBytes)
}

func TestTokenGenerator_Unique(t *testing.T) {
	generator := NewTokenGenerator()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		token, err := generator.Generate()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "duplicate token %s", token)
		seen[token] = struct{}{}
	}
}

func TestTokenGenerator_DeterministicEntropy(t *testing.T) {
	generator := NewTokenGeneratorWithEntropy(bytes.NewReader(make([]byte, TokenBytes)))

	token, err := generator.Generate()
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("A", 43), token)
}

func TestTokenGenerator_EntropyFailure(t *testing.T) {
	generator := NewTokenGeneratorWithEntropy(failingReader{})

	_, err := generator.Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate session token")
}
