package routes

import (
	"github.com/gin-gonic/gin"

	"inkpress/internal/infrastructure/ratelimit"
	"inkpress/internal/interfaces/http/handlers"
	"inkpress/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig contains dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimiter         ratelimit.RateLimiter
}

// SetupSubscriptionRoutes configures the subscription ledger routes. All of
// them require authentication; payment confirmation is rate limited since the
// payment blob is caller-supplied.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	confirmLimit := ratelimit.RateLimitConfig{
		RequestsPerMinute: 5,
		RequestsPerHour:   30,
	}

	subscriptions := engine.Group("/api/subscriptions")
	subscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscriptions.POST("",
			middleware.RateLimit(cfg.RateLimiter, "subscription_confirm", confirmLimit),
			cfg.SubscriptionHandler.ConfirmPayment,
		)
		subscriptions.GET("", cfg.SubscriptionHandler.ListHistory)
		subscriptions.GET("/current", cfg.SubscriptionHandler.GetCurrent)
		subscriptions.POST("/:id/cancel", cfg.SubscriptionHandler.Cancel)
	}
}
