package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuth(t *testing.T) *AuthServiceImpl {
	t.Helper()
	hashSvc := NewArgon2HashService()
	passwordHash, err := hashSvc.Hash("correct horse battery staple")
	require.NoError(t, err)

	return NewAuthService(
		OperatorCredentials{Username: "operator", PasswordHash: passwordHash},
		hashSvc,
		NewJWTTokenService("test-secret-at-least-32-bytes-long!", time.Hour, "liquid-flow"),
	)
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return a usable token", func(t *testing.T) {
		svc := setupAuth(t)
		token, expiry, err := svc.Login(ctx, "operator", "correct horse battery staple")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Greater(t, expiry, time.Now().Unix())

		claims, err := NewJWTTokenService("test-secret-at-least-32-bytes-long!", time.Hour, "liquid-flow").Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "operator", claims.Subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := setupAuth(t)
		_, _, err := svc.Login(ctx, "operator", "wrong")
		assertAppError(t, err, "AUTHZ_009")
	})

	t.Run("wrong username", func(t *testing.T) {
		svc := setupAuth(t)
		_, _, err := svc.Login(ctx, "admin", "correct horse battery staple")
		assertAppError(t, err, "AUTHZ_009")
	})
}

func TestJWTTokenService(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		svc := NewJWTTokenService("secret", time.Hour, "liquid-flow")
		token, expiry, err := svc.Generate("operator")
		require.NoError(t, err)
		assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiry, 5)

		claims, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "operator", claims.Subject)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, _, err := NewJWTTokenService("secret-a", time.Hour, "liquid-flow").Generate("operator")
		require.NoError(t, err)
		_, err = NewJWTTokenService("secret-b", time.Hour, "liquid-flow").Validate(token)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		svc := NewJWTTokenService("secret", -time.Minute, "liquid-flow")
		token, _, err := svc.Generate("operator")
		require.NoError(t, err)
		_, err = svc.Validate(token)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := NewJWTTokenService("secret", time.Hour, "liquid-flow").Validate("not.a.token")
		assert.Error(t, err)
	})
}

func TestArgon2HashService(t *testing.T) {
	svc := NewArgon2HashService()

	t.Run("hash verifies its own password only", func(t *testing.T) {
		hash, err := svc.Hash("password123")
		require.NoError(t, err)

		ok, err := svc.Verify("password123", hash)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.Verify("password124", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("salts are unique per hash", func(t *testing.T) {
		h1, err := svc.Hash("same")
		require.NoError(t, err)
		h2, err := svc.Hash("same")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("malformed hash errors", func(t *testing.T) {
		_, err := svc.Verify("x", "$argon2id$broken")
		assert.Error(t, err)
	})
}
