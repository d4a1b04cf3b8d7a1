package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminUsecases "inkpress/internal/application/admin/usecases"
	articleUsecases "inkpress/internal/application/article/usecases"
	subscriptionUsecases "inkpress/internal/application/subscription/usecases"
	tagUsecases "inkpress/internal/application/tag/usecases"
	userUsecases "inkpress/internal/application/user/usecases"
	"inkpress/internal/domain/access"
	"inkpress/internal/infrastructure/auth"
	"inkpress/internal/infrastructure/config"
	"inkpress/internal/infrastructure/payment"
	"inkpress/internal/infrastructure/ratelimit"
	"inkpress/internal/infrastructure/repository"
	"inkpress/internal/interfaces/http/handlers"
	"inkpress/internal/interfaces/http/middleware"
	"inkpress/internal/interfaces/http/routes"
	"inkpress/internal/shared/logger"
	"inkpress/internal/shared/services/content"
	"inkpress/internal/shared/utils"
)

// Router wires repositories, use cases, handlers and middleware into a Gin
// engine.
type Router struct {
	engine              *gin.Engine
	articleHandler      *handlers.ArticleHandler
	tagHandler          *handlers.TagHandler
	subscriptionHandler *handlers.SubscriptionHandler
	authHandler         *handlers.AuthHandler
	adminHandler        *handlers.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         ratelimit.RateLimiter
	allowedOrigins      []string
	log                 logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()
	registerCustomValidators()

	articleRepo := repository.NewArticleRepository(db, log)
	tagRepo := repository.NewTagRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	tokenIssuer := auth.NewTokenIssuerAdapter(jwtSvc)

	renderer := content.NewRenderer()
	evaluator := access.NewEvaluator(subscriptionRepo)

	createArticleUC := articleUsecases.NewCreateArticleUseCase(articleRepo, tagRepo, renderer, log)
	updateArticleUC := articleUsecases.NewUpdateArticleUseCase(articleRepo, tagRepo, renderer, log)
	deleteArticleUC := articleUsecases.NewDeleteArticleUseCase(articleRepo, log)
	getBySlugUC := articleUsecases.NewGetArticleBySlugUseCase(articleRepo, evaluator, log)
	listPublishedUC := articleUsecases.NewListPublishedArticlesUseCase(articleRepo, log)
	listAllUC := articleUsecases.NewListAllArticlesUseCase(articleRepo, log)

	createTagUC := tagUsecases.NewCreateTagUseCase(tagRepo, log)
	deleteTagUC := tagUsecases.NewDeleteTagUseCase(tagRepo, log)
	listTagsUC := tagUsecases.NewListTagsUseCase(tagRepo, log)

	confirmPaymentUC := subscriptionUsecases.NewConfirmPaymentUseCase(subscriptionRepo, cfg.Subscription, log)
	cancelSubscriptionUC := subscriptionUsecases.NewCancelSubscriptionUseCase(subscriptionRepo, log)
	getCurrentSubscriptionUC := subscriptionUsecases.NewGetCurrentSubscriptionUseCase(subscriptionRepo, log)
	listHistoryUC := subscriptionUsecases.NewListSubscriptionHistoryUseCase(subscriptionRepo, log)

	registerUC := userUsecases.NewRegisterUserUseCase(userRepo, hasher, tokenIssuer, log)
	loginUC := userUsecases.NewLoginUserUseCase(userRepo, hasher, tokenIssuer, log)
	getProfileUC := userUsecases.NewGetProfileUseCase(userRepo, log)

	dashboardStatsUC := adminUsecases.NewGetDashboardStatsUseCase(userRepo, articleRepo, subscriptionRepo, log)

	return &Router{
		engine:              engine,
		articleHandler:      handlers.NewArticleHandler(createArticleUC, updateArticleUC, deleteArticleUC, getBySlugUC, listPublishedUC, listAllUC),
		tagHandler:          handlers.NewTagHandler(createTagUC, deleteTagUC, listTagsUC),
		subscriptionHandler: handlers.NewSubscriptionHandler(confirmPaymentUC, cancelSubscriptionUC, getCurrentSubscriptionUC, listHistoryUC),
		authHandler:         handlers.NewAuthHandler(registerUC, loginUC, getProfileUC),
		adminHandler:        handlers.NewAdminHandler(dashboardStatsUC),
		authMiddleware:      middleware.NewAuthMiddleware(jwtSvc, log),
		rateLimiter:         ratelimit.NewRedisRateLimiter(redisClient),
		allowedOrigins:      cfg.Server.AllowedOrigins,
		log:                 log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupArticleRoutes(r.engine, &routes.ArticleRouteConfig{
		ArticleHandler: r.articleHandler,
		TagHandler:     r.tagHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.subscriptionHandler,
		AuthMiddleware:      r.authMiddleware,
		RateLimiter:         r.rateLimiter,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:   r.adminHandler,
		ArticleHandler: r.articleHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("payment_provider", func(fl validator.FieldLevel) bool {
			_, err := payment.ParseProvider(fl.Field().String())
			return err == nil
		})
	}
}
