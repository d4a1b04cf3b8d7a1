package routes

import (
	"github.com/gin-gonic/gin"

	"inkpress/internal/interfaces/http/handlers"
	"inkpress/internal/interfaces/http/middleware"
)

// AdminRouteConfig contains dependencies for admin routes.
type AdminRouteConfig struct {
	AdminHandler   *handlers.AdminHandler
	ArticleHandler *handlers.ArticleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures the admin surface. Everything behind it
// requires an authenticated admin.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/dashboard", cfg.AdminHandler.DashboardStats)
		admin.GET("/articles", cfg.ArticleHandler.ListAll)
	}
}
