package entities

import (
	"errors"
	"strings"
	"testing"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatedUser(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  bool
	}{
		{name: "valid", userName: "Ana", email: "ana@example.com", password: "secret"},
		{name: "empty name", userName: "  ", email: "ana@example.com", password: "secret", wantErr: true},
		{name: "multibyte name at limit", userName: strings.Repeat("Ж", MaxUserNameLength), email: "ana@example.com", password: "secret"},
		{name: "multibyte name over limit", userName: strings.Repeat("Ж", MaxUserNameLength+1), email: "ana@example.com", password: "secret", wantErr: true},
		{name: "name too long", userName: strings.Repeat("a", MaxUserNameLength+1), email: "ana@example.com", password: "secret", wantErr: true},
		{name: "email without at", userName: "Ana", email: "ana.example.com", password: "secret", wantErr: true},
		{name: "email too long", userName: "Ana", email: strings.Repeat("a", MaxUserEmailLength) + "@x.io", password: "secret", wantErr: true},
		{name: "empty password", userName: "Ana", email: "ana@example.com", password: "", wantErr: true},
		{name: "password over bcrypt limit", userName: "Ana", email: "ana@example.com", password: strings.Repeat("p", 73), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewValidatedUser(NewUser(tt.userName, tt.email, tt.password))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrValidation))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewUserNormalizesEmail(t *testing.T) {
	user := NewUser(" Ana ", "  Ana@Example.COM ", "secret")

	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestPasswordHashing(t *testing.T) {
	user := NewUser("Ana", "ana@example.com", "secret")
	require.NoError(t, user.HashPassword())

	assert.NotEqual(t, "secret", user.Password)
	assert.True(t, user.CheckPassword("secret"))
	assert.False(t, user.CheckPassword("Secret"))
	assert.False(t, user.CheckPassword(""))
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("secret", "not-a-bcrypt-hash"))
}

func TestUpdateProfile(t *testing.T) {
	user := NewUser("Ana", "ana@example.com", "secret")
	require.NoError(t, user.HashPassword())
	oldHash := user.Password

	t.Run("empty fields are kept", func(t *testing.T) {
		require.NoError(t, user.UpdateProfile("", "", ""))
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.Equal(t, oldHash, user.Password)
	})

	t.Run("new password is hashed", func(t *testing.T) {
		require.NoError(t, user.UpdateProfile("Ana Maria", "ANA.M@example.com", "new-secret"))
		assert.Equal(t, "Ana Maria", user.Name)
		assert.Equal(t, "ana.m@example.com", user.Email)
		assert.True(t, user.CheckPassword("new-secret"))
		assert.False(t, user.CheckPassword("secret"))
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		err := user.UpdateProfile("", "nobody", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
