package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNew(t *testing.T) {
	repo := New(12)
	assert.Equal(t, 12, repo.passCost)
}

func TestHashPassword(t *testing.T) {
	t.Run("empty password", func(t *testing.T) {
		_, err := New(4).HashPassword("")
		assert.ErrorIs(t, err, ErrPasswordRequired)
	})

	t.Run("longer than 64 characters", func(t *testing.T) {
		_, err := New(4).HashPassword(strings.Repeat("x", 65))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("exactly 64 characters", func(t *testing.T) {
		hash, err := New(4).HashPassword(strings.Repeat("x", 64))
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
	})

	t.Run("default cost when cost is too low", func(t *testing.T) {
		hash, err := New(bcrypt.MinCost - 1).HashPassword("valid")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})

	t.Run("configured cost", func(t *testing.T) {
		hash, err := New(5).HashPassword("testpass")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$"))

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, 5, cost)
	})

	t.Run("salted", func(t *testing.T) {
		repo := New(4)
		hash1, err := repo.HashPassword("samepass")
		require.NoError(t, err)
		hash2, err := repo.HashPassword("samepass")
		require.NoError(t, err)

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestCheckPasswordHash(t *testing.T) {
	repo := New(4)

	hash, err := repo.HashPassword("correct")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"correct password", "correct", hash, true},
		{"wrong password", "wrong", hash, false},
		{"empty password", "", hash, false},
		{"empty hash", "correct", "", false},
		{"invalid hash format", "correct", "not-a-bcrypt-hash", false},
		{"truncated hash", "correct", hash[:10], false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.CheckPasswordHash(tt.password, tt.hash))
		})
	}
}
