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

	"bassMate/app/echo-server/router"
	"bassMate/business/catches"
	"bassMate/business/recommend"
	"bassMate/internal/middleware"
	"bassMate/internal/repository/modelserver"
	psqlRepo "bassMate/internal/repository/postgres"
	"bassMate/internal/rest"
	"bassMate/pkg/config"
	"bassMate/pkg/database"
	"bassMate/pkg/logger"
	"bassMate/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting BassMate API", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init repo
	trainingRepo := psqlRepo.NewTrainingDataRepository(db)
	catchRepo := psqlRepo.NewFishingCatchRepository(db)
	recoLogRepo := psqlRepo.NewRecommendationLogRepository(db)

	scorer := modelserver.NewModelServerRepository(modelserver.ModelConfig{
		BaseURL: cfg.Model.BaseURL,
		Timeout: cfg.Model.Timeout,
	})

	// Init service
	recommendService := recommend.NewService(trainingRepo, recoLogRepo, scorer, nil)
	catchService := catches.NewService(catchRepo)

	// Init handler
	recommendHandler := rest.NewRecommendHandler(recommendService)
	catchHandler := rest.NewCatchHandler(catchService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendHandler, authRequired)
	router.SetupCatchRoutes(api, catchHandler, authRequired)

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
