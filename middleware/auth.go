package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"school-platform/pkg/apperrors"
	"school-platform/pkg/logger"
)

// JWTMiddleware validates the bearer token and puts its claims on the
// context. It authenticates only; AdminMiddleware decides whether the
// caller may proceed.
func JWTMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		jwtSecret := viper.GetString("JWT_SECRET")

		authHeader := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return apperrors.NewUnauthorized(
				apperrors.ErrCodeTokenMissing,
				"Missing or invalid token",
			)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		segments := strings.Split(tokenString, ".")
		if len(segments) != 3 {
			return apperrors.NewUnauthorized(
				apperrors.ErrCodeTokenMalformed,
				"Malformed token",
			)
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			logger.Get().WithComponent("middleware").Warn("Rejected token", logger.Err(err))
			return apperrors.NewUnauthorized(
				apperrors.ErrCodeTokenInvalid,
				"Invalid or expired token",
			)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperrors.NewUnauthorized(
				apperrors.ErrCodeTokenInvalid,
				"Invalid token claims",
			)
		}

		username, _ := claims["username"].(string)
		isAdmin, _ := claims["isAdmin"].(bool)
		c.Set("username", username)
		c.Set("is_admin", isAdmin)

		return next(c)
	}
}

// AdminMiddleware requires an authenticated admin. A valid token
// without the admin claim is forbidden, not unauthenticated.
func AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		isAdmin, ok := c.Get("is_admin").(bool)
		if !ok || !isAdmin {
			return apperrors.NewForbidden(
				apperrors.ErrCodeNotAdmin,
				"Admin access required",
			)
		}
		return next(c)
	}
}
