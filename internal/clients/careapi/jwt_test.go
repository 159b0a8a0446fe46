package careapi

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "3",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpired(t *testing.T) {
	assert.False(t, tokenExpired(signedToken(t, time.Now().Add(time.Hour))))
	assert.True(t, tokenExpired(signedToken(t, time.Now().Add(-time.Hour))))

	// Inside the skew window counts as expired
	assert.True(t, tokenExpired(signedToken(t, time.Now().Add(10*time.Second))))
}

func TestTokenExpired_Undecodable(t *testing.T) {
	assert.True(t, tokenExpired("not-a-jwt"))
	assert.True(t, tokenExpired(""))
}

func TestTokenExpired_NoExpClaim(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "3"})
	signed, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	assert.True(t, tokenExpired(signed))
}
