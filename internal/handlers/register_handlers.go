package handlers

import (
	"net/http"

	"github.com/credvault/alt_credit_scoring_app/cmd/docs"
	portssvc "github.com/credvault/alt_credit_scoring_app/internal/core/ports/services"
	"github.com/credvault/alt_credit_scoring_app/internal/middleware"
	"github.com/credvault/alt_credit_scoring_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	// Public authentication routes
	registerAuthRoutes(r, cfg)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-resource route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	users := v1.Group("/users/:userID", requireCallerIdentity())
	registerAccountRoutes(users, services.Account)
	registerIngestionRoutes(users, services.Ingestion)
	registerSufficiencyRoutes(users, services.Sufficiency)
	registerScoringRoutes(users, services.Scoring, services.Explanation)
}

// requireCallerIdentity aborts user-scoped requests whose authenticated
// caller identity is missing from the request context.
func requireCallerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.GetUserIDFromContext(c); !ok {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Caller identity missing from authenticated request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Caller identity missing"})
			return
		}
		c.Next()
	}
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
