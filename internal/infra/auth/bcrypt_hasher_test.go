package auth

import (
	"strings"
	"testing"

	"eshop/config"
	domainerrors "eshop/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, hasher.Check("secret123", hash))
	assert.False(t, hasher.Check("secret124", hash))
	assert.False(t, hasher.Check("secret123", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		wantCost int
	}{
		{name: "nil config", cfg: nil, wantCost: bcrypt.DefaultCost},
		{name: "no auth section", cfg: &config.Config{}, wantCost: bcrypt.DefaultCost},
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, wantCost: 5},
		{name: "out of range", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, wantCost: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.wantCost, hasher.cost)
		})
	}
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	_, err := hasher.Hash(strings.Repeat("x", 72))
	require.NoError(t, err)

	_, err = hasher.Hash(strings.Repeat("x", 73))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// 25 three-byte runes pass a rune-count limit but exceed bcrypt's byte limit.
	_, err = hasher.Hash(strings.Repeat("€", 25))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
