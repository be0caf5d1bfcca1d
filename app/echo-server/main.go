package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ecomart/app/echo-server/router"
	"ecomart/business/reco"
	"ecomart/internal/middleware"
	psqlRepo "ecomart/internal/repository/postgres"
	redisRepo "ecomart/internal/repository/redis"
	"ecomart/internal/rest"
	"ecomart/pkg/config"
	"ecomart/pkg/database"
	redisdb "ecomart/pkg/database/redis"
	"ecomart/pkg/logger"
	"ecomart/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting EcoMart", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	recoCfg := reco.Config{
		MinSimilarity:         cfg.Reco.MinSimilarity,
		DefaultRecommendLimit: cfg.Reco.RecommendLimit,
		DefaultSimilarLimit:   cfg.Reco.SimilarLimit,
		DefaultTrendingLimit:  cfg.Reco.TrendingLimit,
		CacheTTL:              cfg.Reco.CacheTTL,
	}

	// Cache is optional: the engine runs uncached when redis is disabled or
	// unreachable.
	var cache reco.RecommendationCache
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, running without recommendation cache", "error", err)
		} else {
			defer redisdb.CloseRedisClient(redisClient)
			cache = redisRepo.NewRecoCache(redisClient, cfg.Reco.CacheTTL)
			logger.Info("Redis connected successfully")
		}
	}

	// Init repo
	productRepo := psqlRepo.NewProductRepository(db)
	activityRepo := psqlRepo.NewActivityRepository(db)

	// Init service
	recoService := reco.NewService(productRepo, activityRepo, cache, recoCfg)

	// Init handler
	recoHandler := rest.NewRecommendationHandler(recoService)
	ecoScoreHandler := rest.NewEcoScoreHandler()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recoHandler, authRequired)
	router.SetupProductRoutes(api, recoHandler)
	router.SetupEcoScoreRoutes(api, ecoScoreHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
