package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("school-admin-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "school-admin-pass", hash)

	assert.True(t, CheckPasswordHash("school-admin-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateJWTClaims(t *testing.T) {
	viper.Set("JWT_SECRET", "test-secret")

	signed, err := GenerateJWT("admin")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, true, claims["isAdmin"])
	assert.NotNil(t, claims["exp"])
}
