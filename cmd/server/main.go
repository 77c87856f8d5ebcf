// Package main is the entry point for the docskin HTTP gateway.
// @title docskin API
// @version 1.0
// @description HTTP gateway over collection facades of a MongoDB-compatible document database. Documents travel as relaxed Extended JSON.

// @contact.name API Support
// @contact.url https://github.com/unifiedui/docskin

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/unifiedui/docskin/docs"
	"github.com/unifiedui/docskin/internal/api/handlers"
	"github.com/unifiedui/docskin/internal/api/middleware"
	"github.com/unifiedui/docskin/internal/api/routes"
	"github.com/unifiedui/docskin/internal/config"
	"github.com/unifiedui/docskin/internal/core/docdb"
	"github.com/unifiedui/docskin/internal/infrastructure/docdb/factory"
	"github.com/unifiedui/docskin/internal/pkg/logging"
	"github.com/unifiedui/docskin/internal/services/skin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.Setup(cfg.Log)

	ctx := context.Background()
	docDBClient, err := connect(ctx, cfg.DocDB)
	if err != nil {
		logger.Fatal().Err(err).Str("type", cfg.DocDB.Type).Msg("failed to initialize document db client")
	}
	defer docDBClient.Close(ctx)

	db := skin.NewDatabase(docDBClient.Database(),
		skin.WithDatabaseLogger(logger),
		skin.WithDefaultMethods(skin.BuiltinMethods()),
	)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	router := setupRouter(cfg, docDBClient, db)

	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("database", db.Name()).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	logger.Info().Msg("server exited")
}

// connect bounds connecting and the initial ping by the configured timeout.
func connect(ctx context.Context, cfg config.DocDBConfig) (docdb.Client, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	return factory.NewClient(ctx, cfg)
}

// setupRouter creates and configures the Gin router.
func setupRouter(cfg *config.Config, docDBClient docdb.Client, db *skin.Database) *gin.Engine {
	router := gin.New()

	// Create middleware
	loggingMw := middleware.NewLoggingMiddleware()
	errorMw := middleware.NewErrorMiddleware()
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins

	routesCfg := &routes.Config{
		HealthHandler:      handlers.NewHealthHandler(docDBClient),
		CollectionsHandler: handlers.NewCollectionsHandler(db),
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw, corsCfg)

	// Swagger documentation endpoint
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
