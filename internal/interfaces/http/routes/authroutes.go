// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"inkpress/internal/infrastructure/ratelimit"
	"inkpress/internal/interfaces/http/handlers"
	"inkpress/internal/interfaces/http/middleware"
)

// AuthRouteConfig contains dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    ratelimit.RateLimiter
}

// SetupAuthRoutes configures registration, login and profile routes.
// Credential endpoints carry a per-IP rate limit.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	credentialLimit := ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   60,
	}

	auth := engine.Group("/api/auth")
	{
		auth.POST("/register",
			middleware.RateLimit(cfg.RateLimiter, "auth_register", credentialLimit),
			cfg.AuthHandler.Register,
		)
		auth.POST("/login",
			middleware.RateLimit(cfg.RateLimiter, "auth_login", credentialLimit),
			cfg.AuthHandler.Login,
		)
		auth.GET("/profile",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.AuthHandler.Profile,
		)
	}
}
