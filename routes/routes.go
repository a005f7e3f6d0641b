package routes

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"school-platform/domain/auth"
	"school-platform/domain/content"
	"school-platform/domain/health"
	"school-platform/middleware"
	"school-platform/pkg/apperrors"
	"school-platform/pkg/logger"
)

// NewRouter builds the shared Echo application. Both the long-lived
// server and the per-invocation function adapter call this with the
// same service, so the two execution environments cannot diverge.
func NewRouter(svc *content.Service) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(log)

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: strings.Split(viper.GetString("CORS_ORIGINS"), ","),
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(logger.RequestLoggerMiddleware(log))
	e.Use(logger.RecoveryMiddleware(log))

	RegisterRoutes(e, svc)

	return e
}

// RegisterRoutes wires handlers onto the Echo instance.
func RegisterRoutes(e *echo.Echo, svc *content.Service) {
	contentHandler := content.NewHandler(svc)
	healthHandler := health.NewHandler(svc.Store())

	loginLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		MaxRequests:   10,
		Window:        time.Minute,
		BlockDuration: 5 * time.Minute,
	})

	// Auth routes
	e.POST("/api/auth/login", auth.LoginHandler, loginLimiter)
	e.POST("/api/auth/logout", auth.LogoutHandler)
	e.GET("/api/auth/verify", auth.VerifyHandler, middleware.JWTMiddleware)

	// Content routes: reads are public, everything else requires an
	// authenticated admin.
	contentGroup := e.Group("/api/content")
	contentGroup.GET("", contentHandler.ListHandler)
	contentGroup.GET("/admin/all", contentHandler.AdminListHandler, middleware.JWTMiddleware, middleware.AdminMiddleware)
	contentGroup.GET("/:id", contentHandler.GetHandler)
	contentGroup.POST("", contentHandler.CreateHandler, middleware.JWTMiddleware, middleware.AdminMiddleware)
	contentGroup.PUT("/:id", contentHandler.UpdateHandler, middleware.JWTMiddleware, middleware.AdminMiddleware)
	contentGroup.DELETE("/:id", contentHandler.DeleteHandler, middleware.JWTMiddleware, middleware.AdminMiddleware)

	// Health routes
	e.GET("/health", healthHandler.HealthHandler)
	e.GET("/health/live", healthHandler.LivenessHandler)
}
