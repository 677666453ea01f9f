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

// PickupHandler обрабатывает запросы подбора точек посадки
type PickupHandler struct {
	pickupUC *usecase.PickupUseCase
	logger   *zap.Logger
}

// NewPickupHandler создает новый экземпляр PickupHandler
func NewPickupHandler(pickupUC *usecase.PickupUseCase, logger *zap.Logger) *PickupHandler {
	return &PickupHandler{
		pickupUC: pickupUC,
		logger:   logger,
	}
}

// GetOptimalPickups возвращает лучшие точки посадки вокруг пассажира
func (h *PickupHandler) GetOptimalPickups(c *fiber.Ctx) error {
	var req dto.OptimalPickupsRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse pickups request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		h.logger.Debug("Pickups request validation failed", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	candidates, err := h.pickupUC.GetOptimalPickups(
		c.Context(),
		domain.Point{Lat: req.Lat, Lng: req.Lng},
		req.MaxDistanceMeters,
	)
	if err != nil {
		h.logger.Error("Failed to get optimal pickups", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, candidates, &utils.Meta{Total: len(candidates)})
}
