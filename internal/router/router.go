package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebook/internal/api"
	"github.com/pageza/recipebook/internal/middleware"
)

// SetupRouter configures the application routes. limiter may be nil, in
// which case write routes are not rate limited.
func SetupRouter(recipeHandler *api.RecipeHandler, limiter *middleware.RateLimiter, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.CORS(allowedOrigins))

	// Health check endpoint
	router.GET("/health", api.HealthCheck)

	var writeMiddleware []gin.HandlerFunc
	if limiter != nil {
		writeMiddleware = append(writeMiddleware, limiter.RateLimitMiddleware())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	recipeHandler.RegisterRoutes(v1, writeMiddleware...)
	if limiter != nil {
		v1.GET("/rate-limit", limiter.QuotaHandler())
	}

	return router
}
