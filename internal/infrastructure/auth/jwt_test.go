package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(42, true)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	t.Run("access token carries identity", func(t *testing.T) {
		claims, err := svc.Verify(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.True(t, claims.IsAdmin)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token is typed", func(t *testing.T) {
		claims, err := svc.Verify(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		other := NewJWTService("different-secret", 15, 7)
		_, err := other.Verify(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("garbage fails", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.Error(t, err)
	})
}

func TestJWTService_Refresh(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(42, false)
	require.NoError(t, err)

	t.Run("refresh token rotates the pair", func(t *testing.T) {
		rotated, err := svc.Refresh(pair.RefreshToken)
		require.NoError(t, err)

		claims, err := svc.Verify(rotated.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("access token is rejected for refresh", func(t *testing.T) {
		_, err := svc.Refresh(pair.AccessToken)
		assert.Error(t, err)
	})
}

func TestBcryptPasswordHasher(t *testing.T) {
	// Minimum cost keeps the test quick.
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, hasher.Verify("correct horse battery staple", hash))
	assert.Error(t, hasher.Verify("wrong password", hash))
	assert.Error(t, hasher.Verify("correct horse battery staple", "not-a-hash"))
}
