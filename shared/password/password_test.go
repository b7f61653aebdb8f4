package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue/shared/password"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{name: "valid password", password: "validPassword123"},
		{name: "short password", password: "abc"},
		{name: "unicode password", password: "пароль123"},
		{name: "empty password", password: "", expectedError: password.ErrEmptyPassword},
		{name: "longer than bcrypt accepts", password: strings.Repeat("a", 100), expectedError: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected bcrypt hash, got %s", hash)
			assert.NotEqual(t, tt.password, hash)
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	validHash, err := password.Hash("testPassword123")
	require.NoError(t, err)

	tests := []struct {
		name          string
		password      string
		hash          string
		expectedError error
	}{
		{name: "match", password: "testPassword123", hash: validHash},
		{name: "wrong password", password: "wrongPassword", hash: validHash, expectedError: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: validHash, expectedError: password.ErrInvalidPassword},
		{name: "empty hash", password: "testPassword123", hash: "", expectedError: password.ErrInvalidPassword},
		{name: "raw text stored as hash", password: "testPassword123", hash: "testPassword123", expectedError: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedError == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}
