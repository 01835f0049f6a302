package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/retailpulse/bi_backend/cmd/docs"
	portssvc "github.com/retailpulse/bi_backend/internal/core/ports/services"
	"github.com/retailpulse/bi_backend/internal/middleware"
	"github.com/retailpulse/bi_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.GET("/health", getHealth)

	root := r.Group("")
	RegisterDashboardRoutes(root, services.Dashboard)
	RegisterUploadRoutes(root, services.Ingestion)

	rate, err := limiter.NewRateFromFormatted(cfg.QueryRateLimit)
	if err != nil {
		return err
	}
	queryLimiter := limiter.New(memorystore.NewStore(), rate)
	RegisterInsightRoutes(root, services.Insight, middleware.RateLimit(queryLimiter))

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// no swagger in prod
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
