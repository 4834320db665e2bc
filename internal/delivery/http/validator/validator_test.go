package validator

import (
	"strings"
	"testing"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_SignupInput(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.SignupInput
		wantDetails []string
	}{
		{
			name:  "valid",
			input: usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"},
		},
		{
			name:        "missing everything",
			input:       usecase.SignupInput{},
			wantDetails: []string{"name is required", "email is required", "password is required"},
		},
		{
			name:        "bad email",
			input:       usecase.SignupInput{Name: "Ada", Email: "not-an-email", Password: "secret123"},
			wantDetails: []string{"email must be a valid email address"},
		},
		{
			name:  "long password",
			input: usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Password: strings.Repeat("p", 100)},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if len(tt.wantDetails) == 0 {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
			for _, want := range tt.wantDetails {
				assert.Contains(t, appErr.Details(), want)
			}
		})
	}
}

func TestValidator_LoginInput(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&usecase.LoginInput{Email: "ada@example.com", Password: "x"}))
	require.NoError(t, v.Validate(&usecase.LoginInput{Email: "ada@example.com", Password: strings.Repeat("p", 100)}))
	assert.ErrorIs(t, v.Validate(&usecase.LoginInput{Email: "ada@example.com"}), domainerrors.ErrInvalidInput)
}
