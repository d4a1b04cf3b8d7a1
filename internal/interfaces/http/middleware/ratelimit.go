package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpress/internal/infrastructure/ratelimit"
	"inkpress/internal/shared/utils"
)

// RateLimit enforces a per-IP limit on a route group using the shared sliding
// window limiter. On limiter failure the request passes; a Redis outage must
// not take down the API.
func RateLimit(limiter ratelimit.RateLimiter, scope string, config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
