package handler

import (
	"time"

	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/pkg/errors"
	"github.com/campus-mobility-service/internal/pkg/utils"
	"github.com/campus-mobility-service/internal/pkg/validator"
	"github.com/campus-mobility-service/internal/usecase"
	"github.com/campus-mobility-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocationHandler обрабатывает запросы валидации и обогащения координат
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

// NewLocationHandler создает новый экземпляр LocationHandler
func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// ValidateLocation проверяет координаты на валидность и принадлежность кампусу
func (h *LocationHandler) ValidateLocation(c *fiber.Ctx) error {
	var req dto.ValidateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse validate request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result := h.locationUC.ValidateCoordinates(domain.Point{Lat: req.Lat, Lng: req.Lng})
	return utils.SendSuccess(c, result, nil)
}

// EnrichLocation обогащает измерение местоположения контекстом
func (h *LocationHandler) EnrichLocation(c *fiber.Ctx) error {
	var req dto.EnrichLocationRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse enrich request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		h.logger.Debug("Enrich request validation failed", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidSessionID)
	}

	sample := domain.LocationSample{
		ID:        uuid.New(),
		SessionID: sessionID,
		Point:     domain.Point{Lat: req.Lat, Lng: req.Lng},
		Timestamp: time.Now().UTC(),
		Accuracy:  req.Accuracy,
		Heading:   req.Heading,
		Speed:     req.Speed,
	}
	if req.BikeAvailability != nil {
		availability := domain.BikeAvailability(*req.BikeAvailability)
		sample.BikeAvailability = &availability
	}

	enriched := h.locationUC.ProcessLocationUpdate(c.Context(), sample)
	return utils.SendSuccess(c, enriched, nil)
}

// ListLandmarks возвращает каталог ориентиров, опционально по категории
func (h *LocationHandler) ListLandmarks(c *fiber.Ctx) error {
	category := domain.LandmarkCategory(c.Query("category"))

	landmarks, err := h.locationUC.Landmarks(category)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, landmarks, &utils.Meta{Total: len(landmarks)})
}

// GetNearbyLandmarks возвращает ориентиры вокруг точки
func (h *LocationHandler) GetNearbyLandmarks(c *fiber.Ctx) error {
	var req dto.NearbyLandmarksRequest
	if err := c.QueryParser(&req); err != nil {
		h.logger.Debug("Failed to parse landmarks request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if req.RadiusMeters == 0 {
		req.RadiusMeters = 500
	}
	if req.RadiusMeters < 0 {
		return utils.SendError(c, errors.ErrInvalidRadius)
	}

	if err := validator.Validate(&req); err != nil {
		h.logger.Debug("Landmarks request validation failed", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	landmarks := h.locationUC.NearbyLandmarks(domain.Point{Lat: req.Lat, Lng: req.Lng}, req.RadiusMeters)
	return utils.SendSuccess(c, landmarks, &utils.Meta{Total: len(landmarks)})
}
