package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/campus-mobility-service/internal/config"
	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/geo"
	"github.com/campus-mobility-service/internal/pkg/logger"
	"github.com/campus-mobility-service/internal/repository/cache"
	"github.com/campus-mobility-service/internal/repository/postgres"
	"github.com/campus-mobility-service/internal/usecase"
	"github.com/campus-mobility-service/internal/worker"
	"github.com/campus-mobility-service/internal/worker/analytics"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Analytics Refresh Worker")
	log.Info("Configuration loaded",
		zap.Duration("refresh_interval", cfg.Worker.RefreshInterval),
		zap.Int("demand_days_back", cfg.Analytics.DemandDaysBack))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories and campus classifier
	activityRepo := postgres.NewActivityRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	centerLat, centerLng := cfg.CampusCenter()
	classifier := geo.NewClassifier(
		geo.DefaultCatalog(),
		domain.Point{Lat: centerLat, Lng: centerLng},
		cfg.Campus.RadiusKm,
	)

	// 6. Initialize use cases
	activityUC := usecase.NewActivityUseCase(activityRepo, cacheRepo, classifier, cfg, log)
	demandUC := usecase.NewDemandUseCase(activityRepo, cacheRepo, classifier, cfg, log)

	// 7. Initialize workers
	refreshWorker := analytics.NewRefreshWorker(activityUC, demandUC, cfg, log)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(refreshWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker stopped successfully")
}
