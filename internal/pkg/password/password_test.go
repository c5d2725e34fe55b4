//go:build unit

package password_test

import (
	"testing"

	"pawbook/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash verifies against the original", func(t *testing.T) {
		hash, err := password.HashPassword("correct horse battery staple")
		require.NoError(t, err)
		assert.NoError(t, password.ComparePassword(hash, "correct horse battery staple"))
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		_, err := password.HashPassword("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})
}

func TestComparePassword(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		err := password.ComparePassword(hash, "password124")
		assert.ErrorIs(t, err, password.ErrComparisonFailed)
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.ErrorIs(t, password.ComparePassword("", "password123"), password.ErrInvalidPassword)
		assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrInvalidPassword)
	})
}
