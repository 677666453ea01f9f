package domain

import "time"

// AnalysisPeriod — границы исторического окна анализа
type AnalysisPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
}

// HourlyDemand — распределение спроса по часам суток.
// Distribution всегда содержит все 24 ключа 0..23, часы без данных — 0.
type HourlyDemand struct {
	Distribution  map[int]int `json:"hourly_distribution"`
	PeakHour      int         `json:"peak_hour"`
	LowestHour    int         `json:"lowest_hour"`
	AverageHourly float64     `json:"average_hourly"`
	Error         string      `json:"error,omitempty"`
}

// DailyDemand — распределение спроса по дням недели.
// В Distribution присутствуют только дни с данными.
type DailyDemand struct {
	Distribution map[string]int `json:"daily_distribution"`
	BusiestDay   string         `json:"busiest_day,omitempty"`
	QuietestDay  string         `json:"quietest_day,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// LocationCount — количество событий у ориентира (для сортированных списков)
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// LocationDemand — распределение спроса по ориентирам и зонам,
// отсортированное по убыванию
type LocationDemand struct {
	LocationDistribution []LocationCount `json:"location_distribution"`
	ZoneDistribution     []ZoneCount     `json:"zone_distribution"`
	Hotspots             []LocationCount `json:"hotspots"` // топ-5
	Error                string          `json:"error,omitempty"`
}

// DemandPrediction — наивный прогноз спроса на текущий час.
// NextHourDemand: low (<10) / medium (10-20) / high (>20).
type DemandPrediction struct {
	NextHourDemand string `json:"next_hour_demand"`
	Confidence     string `json:"confidence"`
	BasedOn        string `json:"based_on"`
	Recommendation string `json:"recommendation"`
	Error          string `json:"error,omitempty"`
}

// DemandPatterns — полный отчет об исторических паттернах спроса
type DemandPatterns struct {
	AnalysisPeriod AnalysisPeriod   `json:"analysis_period"`
	Hourly         HourlyDemand     `json:"hourly_patterns"`
	Daily          DailyDemand      `json:"daily_patterns"`
	Location       LocationDemand   `json:"location_patterns"`
	Prediction     DemandPrediction `json:"predictions"`
	Insights       []string         `json:"insights"`
}
