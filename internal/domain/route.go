package domain

import "time"

// Рейтинги эффективности маршрута
const (
	RatingExcellent = "Excellent" // ratio >= 0.95
	RatingGood      = "Good"      // ratio >= 0.85
	RatingFair      = "Fair"      // ratio >= 0.70
	RatingPoor      = "Poor"
)

// RouteEfficiency — метрики качества маршрута
type RouteEfficiency struct {
	DirectDistanceKm     float64   `json:"direct_distance_km"`
	RouteDistanceKm      float64   `json:"route_distance_km"`
	DetourDistanceKm     float64   `json:"detour_distance_km"`
	DetourPercentage     float64   `json:"detour_percentage"`
	EfficiencyRatio      float64   `json:"efficiency_ratio"`
	EstimatedTimeMinutes float64   `json:"estimated_time_minutes"`
	EfficiencyRating     string    `json:"efficiency_rating"`
	Suggestions          []string  `json:"suggestions"`
	CalculatedAt         time.Time `json:"calculated_at"`
}
