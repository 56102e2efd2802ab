package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestInspectTokenReportsClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.RegisteredClaims{
		Subject:   "svc-account",
		Issuer:    "https://auth.example.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	info, err := InspectToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "svc-account", info.Subject)
	assert.Equal(t, "https://auth.example.com", info.Issuer)
	require.NotNil(t, info.ExpiresAt)
	assert.True(t, info.ExpiresAt.Equal(exp))
	assert.False(t, info.Expired)
}

func TestInspectTokenFlagsExpired(t *testing.T) {
	raw := signedToken(t, jwt.RegisteredClaims{
		Subject:   "svc-account",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	info, err := InspectToken(raw)
	require.NoError(t, err)
	assert.True(t, info.Expired)
}

func TestInspectTokenWithoutExpiry(t *testing.T) {
	raw := signedToken(t, jwt.RegisteredClaims{Subject: "svc-account"})

	info, err := InspectToken(raw)
	require.NoError(t, err)
	assert.Nil(t, info.ExpiresAt)
	assert.False(t, info.Expired)
}

func TestInspectTokenRejectsGarbage(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	assert.Error(t, err)
}
