package usecase

import (
	"math"
	"time"

	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/geo"
	"go.uber.org/zap"
)

// averageBikeSpeedKmh — средняя скорость для оценки времени в пути
const averageBikeSpeedKmh = 15.0

// RouteUseCase обрабатывает бизнес-логику оценки эффективности маршрутов
type RouteUseCase struct {
	logger *zap.Logger
}

// NewRouteUseCase создает новый экземпляр RouteUseCase
func NewRouteUseCase(logger *zap.Logger) *RouteUseCase {
	return &RouteUseCase{logger: logger}
}

// CalculateEfficiency сравнивает маршрут через путевые точки с прямой
// и оценивает качество маршрута
func (uc *RouteUseCase) CalculateEfficiency(start, end domain.Point, waypoints []domain.Point) *domain.RouteEfficiency {
	direct := geo.Distance(start, end)

	route := direct
	if len(waypoints) > 0 {
		route = 0
		current := start
		for _, wp := range waypoints {
			route += geo.Distance(current, wp)
			current = wp
		}
		route += geo.Distance(current, end)
	}

	ratio := 0.0
	if route > 0 {
		ratio = direct / route
	}

	detour := route - direct
	detourPercentage := 0.0
	if direct > 0 {
		detourPercentage = detour / direct * 100
	}

	return &domain.RouteEfficiency{
		DirectDistanceKm:     round2(direct),
		RouteDistanceKm:      round2(route),
		DetourDistanceKm:     round2(detour),
		DetourPercentage:     round1(detourPercentage),
		EfficiencyRatio:      round3(ratio),
		EstimatedTimeMinutes: round1(route / averageBikeSpeedKmh * 60),
		EfficiencyRating:     efficiencyRating(ratio),
		Suggestions:          routeSuggestions(direct, len(waypoints), ratio),
		CalculatedAt:         time.Now().UTC(),
	}
}

func efficiencyRating(ratio float64) string {
	switch {
	case ratio >= 0.95:
		return domain.RatingExcellent
	case ratio >= 0.85:
		return domain.RatingGood
	case ratio >= 0.70:
		return domain.RatingFair
	default:
		return domain.RatingPoor
	}
}

func routeSuggestions(directKm float64, waypointCount int, ratio float64) []string {
	var suggestions []string

	if ratio < 0.8 {
		suggestions = append(suggestions, "Route has significant detours. Consider optimizing waypoints.")
	}
	if ratio > 0.95 {
		suggestions = append(suggestions, "Very efficient route with minimal detours.")
	}
	if directKm > 3 {
		suggestions = append(suggestions, "Long distance route. Consider breaking into segments.")
	}
	if waypointCount > 5 {
		suggestions = append(suggestions, "Many waypoints detected. Consider reducing stops for efficiency.")
	}

	hour := time.Now().UTC().Hour()
	if (hour >= 7 && hour <= 9) || (hour >= 16 && hour <= 18) {
		suggestions = append(suggestions, "Peak hours detected. Allow extra travel time.")
	}

	return suggestions
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
