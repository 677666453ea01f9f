package domain

import "time"

// RealTimeStats — сводка текущей активности кампуса.
// Каждая секция вычисляется независимо: ошибка одного подзапроса
// попадает в поле Error секции и не отменяет остальные.
type RealTimeStats struct {
	Timestamp        time.Time             `json:"timestamp"`
	ActiveUsers      ActiveUsers           `json:"active_users"`
	BikeAvailability BikeAvailabilityStats `json:"bike_availability"`
	PeakHours        PeakHoursSection      `json:"peak_hours"`
	PopularLocations PopularLocations      `json:"popular_locations"`
}

// ActiveUsers — количество активных пользователей по ролям
type ActiveUsers struct {
	Total      int     `json:"total"`
	Drivers    int     `json:"drivers"`
	Passengers int     `json:"passengers"`
	Ratio      float64 `json:"ratio"` // пассажиры на водителя, знаменатель >= 1
	Error      string  `json:"error,omitempty"`
}

// AvailabilityShare — доля одного уровня доступности велосипедов
type AvailabilityShare struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// BikeAvailabilityStats — распределение доступности велосипедов.
// OverallStatus: excellent / good / moderate / poor, либо no_recent_data
// при полном отсутствии свежих отчетов.
type BikeAvailabilityStats struct {
	TotalReports  int                                    `json:"total_reports"`
	Distribution  map[BikeAvailability]AvailabilityShare `json:"distribution,omitempty"`
	OverallStatus string                                 `json:"overall_status"`
	Error         string                                 `json:"error,omitempty"`
}

// PeakHour — один из самых загруженных часов
type PeakHour struct {
	Hour          int    `json:"hour"`
	ActivityCount int    `json:"activity_count"`
	TimeRange     string `json:"time_range"` // "08:00-09:00"
}

// PeakHoursSection — топ самых загруженных часов за неделю
type PeakHoursSection struct {
	Hours []PeakHour `json:"hours"`
	Error string     `json:"error,omitempty"`
}

// PopularLocation — популярная точка по метке ближайшего ориентира
type PopularLocation struct {
	Location      string  `json:"location"`
	ActivityCount int     `json:"activity_count"`
	Percentage    float64 `json:"percentage"`
}

// PopularLocations — топ самых посещаемых точек за сутки
type PopularLocations struct {
	Locations []PopularLocation `json:"locations"`
	Error     string            `json:"error,omitempty"`
}

// HeatmapPoint — точка тепловой карты
type HeatmapPoint struct {
	Point     Point     `json:"point"`
	Intensity int       `json:"intensity"`
	Timestamp time.Time `json:"timestamp"`
}

// Heatmap — данные тепловой карты активности за временное окно
type Heatmap struct {
	TimeRangeMinutes int            `json:"time_range_minutes"`
	TotalDataPoints  int            `json:"total_data_points"`
	ZoneActivity     map[Zone]int   `json:"zone_activity"`
	LandmarkActivity map[string]int `json:"landmark_activity"`
	Points           []HeatmapPoint `json:"heatmap_points"`
	Summary          HeatmapSummary `json:"activity_summary"`
}

// HeatmapSummary — самая активная зона и ориентир
type HeatmapSummary struct {
	MostActiveZone     Zone   `json:"most_active_zone,omitempty"`
	MostActiveLandmark string `json:"most_active_landmark,omitempty"`
}

// ClusterSummary — пространственный кластер измерений.
// Эфемерный: строится заново при каждом вызове аналитики.
type ClusterSummary struct {
	Center       Point     `json:"center"`
	RadiusMeters float64   `json:"radius_meters"`
	MemberCount  int       `json:"member_count"`
	Density      float64   `json:"density"` // участники на кв. метр
	LastUpdated  time.Time `json:"last_updated"`
}

// Hotspot — ориентир с повышенной активностью
type Hotspot struct {
	Landmark      string  `json:"landmark"`
	TotalActivity int     `json:"total_activity"`
	Drivers       int     `json:"drivers"`
	Passengers    int     `json:"passengers"`
	Ratio         float64 `json:"ratio"` // водители на пассажира, знаменатель >= 1
	ActivityLevel string  `json:"activity_level"`
}

// TrafficFlow — базовые метрики потока перемещений
type TrafficFlow struct {
	TotalMovements  int     `json:"total_movements"`
	UniqueLocations int     `json:"unique_locations"`
	MovementDensity float64 `json:"movement_density"`
}

// ActivityMap — карта активности кампуса: кластеры, хотспоты, зоны
type ActivityMap struct {
	TimeWindowMinutes int                 `json:"time_window_minutes"`
	TotalActiveUsers  int                 `json:"total_active_users"`
	Clusters          []ClusterSummary    `json:"clusters"`
	Hotspots          []Hotspot           `json:"hotspots"`
	ZoneActivity      map[Zone]RoleCounts `json:"zone_activity"`
	TrafficFlow       TrafficFlow         `json:"traffic_flow"`
	GeneratedAt       time.Time           `json:"generated_at"`
}
