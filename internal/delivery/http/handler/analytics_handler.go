package handler

import (
	"github.com/campus-mobility-service/internal/pkg/utils"
	"github.com/campus-mobility-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AnalyticsHandler обрабатывает запросы аналитики кампуса
type AnalyticsHandler struct {
	activityUC *usecase.ActivityUseCase
	demandUC   *usecase.DemandUseCase
	safetyUC   *usecase.SafetyUseCase
	logger     *zap.Logger
}

// NewAnalyticsHandler создает новый экземпляр AnalyticsHandler
func NewAnalyticsHandler(
	activityUC *usecase.ActivityUseCase,
	demandUC *usecase.DemandUseCase,
	safetyUC *usecase.SafetyUseCase,
	logger *zap.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		activityUC: activityUC,
		demandUC:   demandUC,
		safetyUC:   safetyUC,
		logger:     logger,
	}
}

// GetRealTimeStats возвращает сводку текущей активности
func (h *AnalyticsHandler) GetRealTimeStats(c *fiber.Ctx) error {
	stats, err := h.activityUC.GetRealTimeStats(c.Context())
	if err != nil {
		h.logger.Error("Failed to get real-time stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// GetHeatmap возвращает тепловую карту активности
func (h *AnalyticsHandler) GetHeatmap(c *fiber.Ctx) error {
	timeRange := c.QueryInt("time_range", 60)

	heatmap, err := h.activityUC.GetHeatmap(c.Context(), timeRange)
	if err != nil {
		h.logger.Error("Failed to get heatmap", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, heatmap, nil)
}

// GetActivityMap возвращает карту активности с кластерами и хотспотами
func (h *AnalyticsHandler) GetActivityMap(c *fiber.Ctx) error {
	timeWindow := c.QueryInt("time_window", 60)

	activityMap, err := h.activityUC.GetActivityMap(c.Context(), timeWindow)
	if err != nil {
		h.logger.Error("Failed to get activity map", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, activityMap, nil)
}

// GetDemandPatterns возвращает исторические паттерны спроса
func (h *AnalyticsHandler) GetDemandPatterns(c *fiber.Ctx) error {
	daysBack := c.QueryInt("days_back", 0)

	patterns, err := h.demandUC.GetDemandPatterns(c.Context(), daysBack)
	if err != nil {
		h.logger.Error("Failed to get demand patterns", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, patterns, nil)
}

// GetSafetyAnalytics возвращает аналитику безопасности
func (h *AnalyticsHandler) GetSafetyAnalytics(c *fiber.Ctx) error {
	report, err := h.safetyUC.GetSafetyAnalytics(c.Context())
	if err != nil {
		h.logger.Error("Failed to get safety analytics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, report, nil)
}
