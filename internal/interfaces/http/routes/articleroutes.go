package routes

import (
	"github.com/gin-gonic/gin"

	"inkpress/internal/interfaces/http/handlers"
	"inkpress/internal/interfaces/http/middleware"
)

// ArticleRouteConfig contains dependencies for article and tag routes.
type ArticleRouteConfig struct {
	ArticleHandler *handlers.ArticleHandler
	TagHandler     *handlers.TagHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupArticleRoutes configures public article reads and authenticated
// article writes. Reads use optional auth so the premium gate can see who is
// asking without requiring login.
func SetupArticleRoutes(engine *gin.Engine, cfg *ArticleRouteConfig) {
	articles := engine.Group("/api/articles")
	{
		articles.GET("", cfg.ArticleHandler.ListPublished)
		articles.GET("/:slug", cfg.AuthMiddleware.OptionalAuth(), cfg.ArticleHandler.GetBySlug)

		authed := articles.Group("")
		authed.Use(cfg.AuthMiddleware.RequireAuth())
		{
			authed.POST("", cfg.ArticleHandler.Create)
			authed.PUT("/:id", cfg.ArticleHandler.Update)
			authed.DELETE("/:id", cfg.ArticleHandler.Delete)
		}
	}

	tags := engine.Group("/api/tags")
	{
		tags.GET("", cfg.TagHandler.List)

		adminTags := tags.Group("")
		adminTags.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
		{
			adminTags.POST("", cfg.TagHandler.Create)
			adminTags.DELETE("/:id", cfg.TagHandler.Delete)
		}
	}
}
