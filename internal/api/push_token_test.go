package api

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestPushTokenIdentityPrefersEmail(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"email": "chaddon-push@example.iam.gserviceaccount.com",
		"sub":   "1234567890",
	})

	got := pushTokenIdentity("Bearer " + token)
	assert.Equal(t, "chaddon-push@example.iam.gserviceaccount.com", got)
}

func TestPushTokenIdentityFallsBackToSub(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "1234567890"})

	got := pushTokenIdentity("Bearer " + token)
	assert.Equal(t, "1234567890", got)
}

func TestPushTokenIdentityRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"not a bearer scheme", "Basic dXNlcjpwYXNz"},
		{"bearer without token", "Bearer"},
		{"token is not a jwt", "Bearer just-some-string"},
		{"no identity claims", "Bearer " + signedToken(t, jwt.MapClaims{"aud": "https://example.com"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", pushTokenIdentity(tt.header))
		})
	}
}
