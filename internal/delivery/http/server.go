package http

import (
	"context"
	"time"

	"github.com/campus-mobility-service/internal/config"
	"github.com/campus-mobility-service/internal/delivery/http/handler"
	"github.com/campus-mobility-service/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	locationHandler  *handler.LocationHandler
	analyticsHandler *handler.AnalyticsHandler
	pickupHandler    *handler.PickupHandler
	routeHandler     *handler.RouteHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	locationHandler *handler.LocationHandler,
	analyticsHandler *handler.AnalyticsHandler,
	pickupHandler *handler.PickupHandler,
	routeHandler *handler.RouteHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Campus Mobility Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		locationHandler:  locationHandler,
		analyticsHandler: analyticsHandler,
		pickupHandler:    pickupHandler,
		routeHandler:     routeHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Location routes
	api.Post("/location/validate", s.locationHandler.ValidateLocation)
	api.Post("/location/enrich", s.locationHandler.EnrichLocation)
	api.Get("/location/landmarks", s.locationHandler.ListLandmarks)
	api.Get("/location/landmarks/nearby", s.locationHandler.GetNearbyLandmarks)

	// Analytics routes
	api.Get("/analytics/realtime", s.analyticsHandler.GetRealTimeStats)
	api.Get("/analytics/heatmap", s.analyticsHandler.GetHeatmap)
	api.Get("/analytics/activity-map", s.analyticsHandler.GetActivityMap)
	api.Get("/analytics/demand", s.analyticsHandler.GetDemandPatterns)
	api.Get("/analytics/safety", s.analyticsHandler.GetSafetyAnalytics)

	// Pickup routes
	api.Post("/pickups/optimal", s.pickupHandler.GetOptimalPickups)

	// Route routes
	api.Post("/routes/efficiency", s.routeHandler.CalculateEfficiency)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает fiber-приложение (для тестов)
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
