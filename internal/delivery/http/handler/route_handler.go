package handler

import (
	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/pkg/errors"
	"github.com/campus-mobility-service/internal/pkg/utils"
	"github.com/campus-mobility-service/internal/pkg/validator"
	"github.com/campus-mobility-service/internal/usecase"
	"github.com/campus-mobility-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RouteHandler обрабатывает запросы оценки маршрутов
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler создает новый экземпляр RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// CalculateEfficiency оценивает эффективность маршрута через путевые точки
func (h *RouteHandler) CalculateEfficiency(c *fiber.Ctx) error {
	var req dto.RouteEfficiencyRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse route request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		h.logger.Debug("Route request validation failed", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	waypoints := make([]domain.Point, 0, len(req.Waypoints))
	for _, wp := range req.Waypoints {
		waypoints = append(waypoints, domain.Point{Lat: wp.Lat, Lng: wp.Lng})
	}

	efficiency := h.routeUC.CalculateEfficiency(
		domain.Point{Lat: req.Start.Lat, Lng: req.Start.Lng},
		domain.Point{Lat: req.End.Lat, Lng: req.End.Lng},
		waypoints,
	)

	return utils.SendSuccess(c, efficiency, nil)
}
