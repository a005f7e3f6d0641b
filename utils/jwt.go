package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const tokenExpiry = 24 * time.Hour

// GenerateJWT issues the admin capability token consumed by the
// content mutation endpoints.
func GenerateJWT(username string) (string, error) {
	jwtSecret := viper.GetString("JWT_SECRET")

	claims := jwt.MapClaims{
		"username": username,
		"isAdmin":  true,
		"exp":      time.Now().Add(tokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
