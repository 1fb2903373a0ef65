package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebook/config"
	"github.com/pageza/recipebook/internal/api"
	"github.com/pageza/recipebook/internal/database"
	"github.com/pageza/recipebook/internal/logger"
	"github.com/pageza/recipebook/internal/middleware"
	"github.com/pageza/recipebook/internal/router"
	"github.com/pageza/recipebook/internal/server"
	"github.com/pageza/recipebook/internal/service"
	"github.com/pageza/recipebook/internal/storage"
)

func main() {
	configFile := flag.String("config", "", "path to a config file")
	flag.Parse()

	// Initialize configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatal("failed to load configuration", "err", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		logger.Fatal("failed to configure logging", "err", err)
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	gateway, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open recipe storage", "backend", cfg.StorageBackend, "err", err)
	}
	defer closeStore()

	recipes := service.NewRecipeService(gateway, cfg.Location())
	if _, err := recipes.Load(ctx); err != nil {
		logger.Warn("starting with an empty recipe book", "err", err)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("failed to connect to Redis for rate limiting", "err", err)
		} else {
			defer redisClient.Close()
			limiter = middleware.NewCatalogWriteRateLimiter(redisClient, cfg.RateLimit, cfg.RateLimitWindow)
		}
	}

	engine := router.SetupRouter(api.NewRecipeHandler(recipes), limiter, cfg.AllowedOrigins)
	srv := server.New(cfg, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			logger.Error("server error", "err", err)
		}
	case sig := <-quit:
		logger.Info("received signal", "signal", sig.String())
	}

	logger.Info("shutting down server")
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}

	if _, err := recipes.Save(ctx); err != nil {
		logger.Error("failed to save recipe book on shutdown", "err", err)
	}
	logger.Info("server stopped")
}
