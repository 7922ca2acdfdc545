package handlers

import (
	"github.com/SscSPs/rental_ledger/cmd/docs"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	RegisterValidators()

	r.GET("/health", getHealth)

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	v1 := r.Group("/api/v1",
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(limiter),
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
	)

	RegisterAccountRoutes(v1, service.Account)
	RegisterLedgerRoutes(v1, service.Ledger)
	RegisterSaleRoutes(v1, service.Sale)
	RegisterExpenseRoutes(v1, service.Expense)
	RegisterReportingRoutes(v1, service.Reporting)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
