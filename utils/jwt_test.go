package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("secret", 1)
	require.NoError(t, err)

	token, err := issuer.GenerateJWT("admin-1", "goldensnow360", "admin")
	require.NoError(t, err)

	claims, err := issuer.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "goldensnow360", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenIssuer_RejectsOtherSecret(t *testing.T) {
	a, _ := NewTokenIssuer("one", 1)
	b, _ := NewTokenIssuer("two", 1)
	token, err := a.GenerateJWT("x", "y", "admin")
	require.NoError(t, err)

	_, err = b.ValidateJWT(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsNoneAlgorithm(t *testing.T) {
	issuer, _ := NewTokenIssuer("secret", 1)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{AdminID: "x"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.ValidateJWT(signed)
	assert.Error(t, err)
}

func TestNewTokenIssuer_RequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("", 24)
	assert.Error(t, err)
}
