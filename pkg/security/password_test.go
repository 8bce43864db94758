package security

import (
	"testing"

	"github.com/jak-krittin/minishop-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := config.PasswordConfig{BcryptCost: 4}

	hash, err := HashPassword("Secret123!", cfg)
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", hash)

	ok, err := VerifyPassword("Secret123!", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("", config.PasswordConfig{BcryptCost: 4})
	assert.Error(t, err)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("anything", "not-a-bcrypt-hash")
	assert.Error(t, err)
}
