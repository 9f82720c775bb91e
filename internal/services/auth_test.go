package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthService_VerifyToken(t *testing.T) {
	auth := NewAuthService("test-secret")

	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	userID, err := auth.VerifyToken(token)

	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestAuthService_WrongSecret(t *testing.T) {
	auth := NewAuthService("test-secret")

	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := auth.VerifyToken(token)

	assert.Error(t, err)
}

func TestAuthService_ExpiredToken(t *testing.T) {
	auth := NewAuthService("test-secret")

	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := auth.VerifyToken(token)

	assert.Error(t, err)
}

func TestAuthService_MissingSubject(t *testing.T) {
	auth := NewAuthService("test-secret")

	token := signToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := auth.VerifyToken(token)

	assert.Error(t, err)
}

func TestAuthService_NoSecretConfigured(t *testing.T) {
	auth := NewAuthService("")

	_, err := auth.VerifyToken("anything")

	assert.Error(t, err)
}

func TestAuthService_Garbage(t *testing.T) {
	auth := NewAuthService("test-secret")

	_, err := auth.VerifyToken("not.a.jwt")

	assert.Error(t, err)
}
