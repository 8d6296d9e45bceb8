package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bassMate/business/ingest"
	"bassMate/internal/repository/kakao"
	"bassMate/internal/repository/openmeteo"
	psqlRepo "bassMate/internal/repository/postgres"
	"bassMate/pkg/config"
	"bassMate/pkg/database"
	"bassMate/pkg/logger"
	"bassMate/pkg/metrics"

	"github.com/go-co-op/gocron"
)

// The ingest worker refines raw catches into training data: geocoding,
// time-period normalization, weather backfill and dedup-merge. With no
// interval configured it runs a single pass and exits; with one it keeps
// running passes on a schedule.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting BassMate ingest worker", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	catchRepo := psqlRepo.NewFishingCatchRepository(db)
	trainingRepo := psqlRepo.NewTrainingDataRepository(db)

	geoResolver := kakao.NewKakaoRepository(kakao.KakaoConfig{
		BaseURL: cfg.Kakao.BaseURL,
		APIKey:  cfg.Kakao.APIKey,
		Timeout: cfg.Kakao.Timeout,
	})

	weatherBackfill := openmeteo.NewOpenMeteoRepository(openmeteo.OpenMeteoConfig{
		BaseURL: cfg.OpenMeteo.BaseURL,
		Timeout: cfg.OpenMeteo.Timeout,
	})

	ingestService := ingest.NewService(
		catchRepo,
		trainingRepo,
		geoResolver,
		weatherBackfill,
		cfg.Ingest.FailureReportPath,
	)

	runPass := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		if _, err := ingestService.RunPass(ctx); err != nil {
			logger.Error("ingestion pass failed", "error", err)
		}
	}

	if cfg.Ingest.Interval <= 0 {
		runPass()
		return
	}

	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Every(cfg.Ingest.Interval).Do(runPass); err != nil {
		logger.Fatal("Failed to schedule ingestion passes", "error", err)
	}
	scheduler.StartAsync()

	logger.Info("Scheduled ingestion passes", "interval", cfg.Ingest.Interval.String())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Stopping ingest worker...")
	scheduler.Stop()
}
