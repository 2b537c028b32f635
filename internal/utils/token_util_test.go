package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")
	identity := map[string]string{"_id": "abc", "emailId": "a@b.c"}

	token, sessionID, err := GenerateJWTToken(secret, identity, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, sessionID)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)

	assert.Equal(t, sessionID, claims["jti"])
	claim, ok := claims["claim"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "abc", claim["_id"])
	assert.Equal(t, "a@b.c", claim["emailId"])
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := GenerateJWTToken([]byte("secret-a"), "claim", 1)
	require.NoError(t, err)

	_, err = ValidateToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken([]byte("secret"), "not-a-token")
	assert.Error(t, err)
}
