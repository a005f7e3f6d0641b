package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"school-platform/pkg/apperrors"
	"school-platform/pkg/logger"
	"school-platform/utils"
)

// LoginHandler authenticates the single admin account configured via
// ADMIN_USER / ADMIN_PASS_HASH and issues a bearer token. Without a
// configured password hash every login fails; there is no default
// password.
func LoginHandler(c echo.Context) error {
	log := logger.Get().WithComponent("auth")
	log = log.WithRequestID(logger.GetRequestIDFromContext(c))

	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		log.Warn("Invalid login request payload", logger.Err(err))
		return apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload",
		)
	}

	if req.Username == "" || req.Password == "" {
		return apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Username and password are required",
		)
	}

	adminUser := viper.GetString("ADMIN_USER")
	adminPassHash := viper.GetString("ADMIN_PASS_HASH")

	if req.Username != adminUser {
		log.Warn("Login attempt with unknown username", logger.Username(req.Username))
		return apperrors.NewUnauthorized(
			apperrors.ErrCodeInvalidCredentials,
			"Invalid credentials",
		)
	}

	if adminPassHash == "" {
		log.Error("ADMIN_PASS_HASH is not configured, rejecting login", nil)
		return apperrors.NewUnauthorized(
			apperrors.ErrCodeInvalidCredentials,
			"Invalid credentials",
		)
	}

	if !utils.CheckPasswordHash(req.Password, adminPassHash) {
		log.Warn("Login attempt with wrong password", logger.Username(req.Username))
		return apperrors.NewUnauthorized(
			apperrors.ErrCodeInvalidCredentials,
			"Invalid credentials",
		)
	}

	token, err := utils.GenerateJWT(adminUser)
	if err != nil {
		log.Error("Failed to sign token", err)
		return apperrors.NewInternal(
			apperrors.ErrCodeUnexpectedError,
			"Server error during login",
			err,
		)
	}

	log.Info("Admin logged in", logger.Username(adminUser))
	return c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    AdminUser{Username: adminUser, IsAdmin: true},
	})
}

// LogoutHandler exists for symmetry with the dashboard client; the
// token is discarded client-side.
func LogoutHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logout successful",
	})
}

// VerifyHandler confirms the presented token. It runs behind the JWT
// middleware, so reaching it means the token already checked out.
func VerifyHandler(c echo.Context) error {
	username, _ := c.Get("username").(string)
	isAdmin, _ := c.Get("is_admin").(bool)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Token is valid",
		"user":    AdminUser{Username: username, IsAdmin: isAdmin},
	})
}
