package handlers

import (
	"github.com/SscSPs/money_counter/cmd/docs"
	portssvc "github.com/SscSPs/money_counter/internal/core/ports/services"
	"github.com/SscSPs/money_counter/internal/middleware"
	"github.com/SscSPs/money_counter/internal/platform/config"
	"github.com/SscSPs/money_counter/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.GET("/health", getHealth)

	// Token issuance is public but rate limited against credential guessing
	auth := r.Group("/auth", middleware.RateLimit(rateLimiter))
	RegisterAuthRoutes(auth, services.TokenService)

	setupAPIV1Routes(r, cfg, services, rateLimiter, posthogClient)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.RateLimit(rateLimiter),
		middleware.PosthogMiddleware(posthogClient),
	)

	RegisterPronounceRoutes(v1, services.Pronunciation)
	RegisterCalculationRoutes(v1, services.Calculation)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
