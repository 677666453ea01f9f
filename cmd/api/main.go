package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campus-mobility-service/internal/config"
	httpDelivery "github.com/campus-mobility-service/internal/delivery/http"
	"github.com/campus-mobility-service/internal/delivery/http/handler"
	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/geo"
	"github.com/campus-mobility-service/internal/pkg/logger"
	"github.com/campus-mobility-service/internal/repository/cache"
	"github.com/campus-mobility-service/internal/repository/postgres"
	"github.com/campus-mobility-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Campus Mobility Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

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

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and campus classifier
	activityRepo := postgres.NewActivityRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	centerLat, centerLng := cfg.CampusCenter()
	classifier := geo.NewClassifier(
		geo.DefaultCatalog(),
		domain.Point{Lat: centerLat, Lng: centerLng},
		cfg.Campus.RadiusKm,
	)
	history := usecase.NewHistoryCache(cfg.Analytics.HistoryCapacity)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	activityUC := usecase.NewActivityUseCase(activityRepo, cacheRepo, classifier, cfg, log)
	demandUC := usecase.NewDemandUseCase(activityRepo, cacheRepo, classifier, cfg, log)
	safetyUC := usecase.NewSafetyUseCase(activityRepo, classifier, cfg, log)
	pickupUC := usecase.NewPickupUseCase(activityRepo, classifier, cfg, log)
	routeUC := usecase.NewRouteUseCase(log)
	locationUC := usecase.NewLocationUseCase(activityRepo, history, classifier, cfg, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	locationHandler := handler.NewLocationHandler(locationUC, log)
	analyticsHandler := handler.NewAnalyticsHandler(activityUC, demandUC, safetyUC, log)
	pickupHandler := handler.NewPickupHandler(pickupUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		locationHandler,
		analyticsHandler,
		pickupHandler,
		routeHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
