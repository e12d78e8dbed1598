// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateToken("507f1f77bcf86cd799439011", 1)
	require.NoError(t, err)

	subject, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", subject)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("test-secret")
	token, err := GenerateToken("user-1", 1)
	require.NoError(t, err)

	SetJWTSecret("another-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateToken("user-1", -1)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
