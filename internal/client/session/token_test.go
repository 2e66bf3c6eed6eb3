package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unknown-to-client"))
	require.NoError(t, err)
	return s
}

func TestInspectToken(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	iat := exp.Add(-time.Hour)
	token := signed(t, jwt.RegisteredClaims{
		Subject:   "STY000011",
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(iat),
	})

	info := InspectToken(token)
	assert.False(t, info.Opaque)
	assert.Equal(t, "STY000011", info.Subject)
	assert.True(t, exp.Equal(info.ExpiresAt))
	assert.True(t, iat.Equal(info.IssuedAt))
	assert.False(t, info.Expired(exp.Add(-time.Minute)))
	assert.True(t, info.Expired(exp.Add(time.Minute)))
}

func TestInspectToken_Opaque(t *testing.T) {
	for _, tok := range []string{"", "opaque-session-id", "a.b.c"} {
		info := InspectToken(tok)
		assert.True(t, info.Opaque, tok)
		assert.False(t, info.Expired(time.Now()))
	}
}

func TestInspectToken_NoExpiry(t *testing.T) {
	info := InspectToken(signed(t, jwt.RegisteredClaims{Subject: "x"}))
	assert.False(t, info.Opaque)
	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired(time.Now()))
}
