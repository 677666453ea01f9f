package domain

import "time"

// CoordinateValidation — результат проверки координат.
// Нарушение диапазона останавливает дальнейшую классификацию:
// Errors заполнен, остальные поля пустые.
type CoordinateValidation struct {
	Valid                bool     `json:"valid"`
	WithinCampus         bool     `json:"within_campus"`
	DistanceFromCenterKm *float64 `json:"distance_from_center,omitempty"`
	NearestLandmark      string   `json:"nearest_landmark,omitempty"`
	Zone                 Zone     `json:"zone,omitempty"`
	Errors               []string `json:"errors,omitempty"`
}

// LocationContext — контекст точки: ориентиры, зона, тип места
type LocationContext struct {
	NearestLandmark string   `json:"nearest_landmark"`
	Zone            Zone     `json:"campus_zone"`
	NearbyLandmarks []string `json:"nearby_landmarks"`
	LocationType    string   `json:"location_type"`
	Accessibility   string   `json:"accessibility"` // high / medium / low
	SafetyFeatures  []string `json:"safety_features"`
}

// NearbyActivity — активность вокруг точки за последние минуты
type NearbyActivity struct {
	RadiusMeters         float64    `json:"radius_meters"`
	TotalNearbyUsers     int        `json:"total_nearby_users"`
	DriversNearby        int        `json:"drivers_nearby"`
	PassengersNearby     int        `json:"passengers_nearby"`
	DriverPassengerRatio float64    `json:"driver_passenger_ratio"`
	BikeStatus           string     `json:"bike_availability_status"`
	ActivityLevel        string     `json:"activity_level"`
	LastActivity         *time.Time `json:"last_activity,omitempty"`
	Error                string     `json:"error,omitempty"`
}

// MovementPattern — паттерн перемещения сессии по истории замеров.
// Status == "insufficient_data", если замеров меньше двух.
type MovementPattern struct {
	Status          string  `json:"status,omitempty"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	AverageSpeedKmh float64 `json:"average_speed_kmh"`
	MovementType    string  `json:"movement_type"`
	LocationChanges int     `json:"location_changes"`
	TimeSpanMinutes float64 `json:"time_span_minutes"`
	IsStationary    bool    `json:"is_stationary"`
	EstimatedMode   string  `json:"estimated_mode"`
}

// EnrichedSample — обогащенное измерение местоположения.
// Ошибки подвычислений — данные, а не поток управления: каждая секция
// деградирует независимо.
type EnrichedSample struct {
	Location        LocationSample  `json:"location"`
	AccuracyLevel   AccuracyLevel   `json:"accuracy_level"`
	Context         LocationContext `json:"context"`
	NearbyActivity  NearbyActivity  `json:"nearby_activity"`
	MovementPattern MovementPattern `json:"movement_pattern"`
	Recommendations []string        `json:"recommendations"`
	ProcessedAt     time.Time       `json:"processed_at"`
	Error           string          `json:"error,omitempty"`
}
