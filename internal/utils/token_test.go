package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdminToken(t *testing.T) {
	tok, err := NewAdminToken("test-secret", 30)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, AdminRole, claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp.Time, time.Minute)
	assert.WithinDuration(t, tok.Exp, exp.Time, time.Second)
}

func TestNewAdminTokenRejectsWrongSecret(t *testing.T) {
	tok, err := NewAdminToken("test-secret", 30)
	require.NoError(t, err)

	_, err = jwt.Parse(tok.Token, func(*jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("open-sesame")
	require.NoError(t, err)
	assert.NotEqual(t, "open-sesame", hash)

	assert.True(t, VerifyPassword(hash, "open-sesame"))
	assert.False(t, VerifyPassword(hash, "Open-Sesame"))
	assert.False(t, VerifyPassword("not-a-hash", "open-sesame"))
}
