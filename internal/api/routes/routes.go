// Package routes defines the HTTP routes of the docskin gateway.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docskin/internal/api/handlers"
	"github.com/unifiedui/docskin/internal/api/middleware"
)

// BasePath is the prefix of every route.
const BasePath = "/api/v1/docskin"

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler      *handlers.HealthHandler
	CollectionsHandler *handlers.CollectionsHandler
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	v1 := r.Group(BasePath)
	{
		v1.GET("/health", cfg.HealthHandler.Health)
		v1.GET("/ready", cfg.HealthHandler.Ready)
		v1.GET("/live", cfg.HealthHandler.Live)

		v1.GET("/collections", cfg.CollectionsHandler.ListCollections)

		collection := v1.Group("/collections/:name")
		{
			// Bulk and streaming queries
			collection.GET("/items", cfg.CollectionsHandler.ListItems)
			collection.GET("/stream", cfg.CollectionsHandler.StreamItems)

			// Single-document helpers keyed by identifier
			collection.GET("/items/:id", cfg.CollectionsHandler.GetItem)
			collection.PATCH("/items/:id", cfg.CollectionsHandler.UpdateItem)
			collection.DELETE("/items/:id", cfg.CollectionsHandler.RemoveItem)

			// Bound methods
			collection.GET("/methods", cfg.CollectionsHandler.ListMethods)
			collection.POST("/methods/:method", cfg.CollectionsHandler.CallMethod)
		}
	}

	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware, corsCfg middleware.CORSConfig) {
	// Apply global middleware
	r.Use(middleware.NewCORSMiddleware(corsCfg))
	r.Use(loggingMw.RequestLogger())
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(gin.Recovery())

	// Setup routes
	Setup(r, cfg)
}
