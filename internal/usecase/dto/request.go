package dto

// PointDTO - пара координат в запросе
type PointDTO struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// ValidateLocationRequest - запрос на проверку координат
type ValidateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EnrichLocationRequest - запрос на обогащение измерения местоположения
type EnrichLocationRequest struct {
	SessionID        string   `json:"session_id" validate:"required,uuid4"`
	Lat              float64  `json:"lat" validate:"min=-90,max=90"`
	Lng              float64  `json:"lng" validate:"min=-180,max=180"`
	BikeAvailability *string  `json:"bike_availability,omitempty" validate:"omitempty,oneof=high medium low none"`
	Accuracy         *float64 `json:"accuracy,omitempty" validate:"omitempty,min=0"`
	Heading          *float64 `json:"heading,omitempty" validate:"omitempty,min=0,max=360"`
	Speed            *float64 `json:"speed,omitempty" validate:"omitempty,min=0"`
}

// NearbyLandmarksRequest - запрос на поиск ориентиров вокруг точки
type NearbyLandmarksRequest struct {
	Lat          float64 `json:"lat" query:"lat" validate:"min=-90,max=90"`
	Lng          float64 `json:"lng" query:"lng" validate:"min=-180,max=180"`
	RadiusMeters float64 `json:"radius_meters,omitempty" query:"radius" validate:"omitempty,min=1,max=10000"`
}

// OptimalPickupsRequest - запрос на подбор точек посадки
type OptimalPickupsRequest struct {
	Lat               float64 `json:"lat" validate:"min=-90,max=90"`
	Lng               float64 `json:"lng" validate:"min=-180,max=180"`
	MaxDistanceMeters float64 `json:"max_distance_meters,omitempty" validate:"omitempty,min=1,max=10000"`
}

// RouteEfficiencyRequest - запрос на оценку эффективности маршрута
type RouteEfficiencyRequest struct {
	Start     PointDTO   `json:"start" validate:"required"`
	End       PointDTO   `json:"end" validate:"required"`
	Waypoints []PointDTO `json:"waypoints,omitempty" validate:"omitempty,max=20,dive"`
}
