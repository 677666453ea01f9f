package domain

// IncidentPatterns — группировки инцидентов по типу, месту и часу
type IncidentPatterns struct {
	ByType     map[string]int `json:"by_type"`
	ByLocation map[string]int `json:"by_location"` // метка ближайшего ориентира
	ByHour     map[int]int    `json:"by_hour"`
}

// SafetyMetrics — численные метрики безопасности.
// AvgResolutionMinutes == nil, если ни один инцидент не был разрешен.
type SafetyMetrics struct {
	SafetyScore          float64  `json:"safety_score"`
	ResponseRate         float64  `json:"response_rate"`
	AvgResolutionMinutes *float64 `json:"resolution_time,omitempty"`
}

// SafetyReport — аналитика безопасности за скользящее окно
type SafetyReport struct {
	PeriodDays      int              `json:"period_days"`
	TotalIncidents  int              `json:"total_emergencies"`
	Patterns        IncidentPatterns `json:"emergency_patterns"`
	Metrics         SafetyMetrics    `json:"safety_metrics"`
	Recommendations []string         `json:"recommendations"`
	Error           string           `json:"error,omitempty"`
}
