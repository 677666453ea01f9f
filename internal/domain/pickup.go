package domain

// PickupScoreBreakdown — составляющие взвешенной оценки точки посадки
type PickupScoreBreakdown struct {
	Distance      float64 `json:"distance"`      // вес 0.3
	Drivers       float64 `json:"drivers"`       // вес 0.4
	Accessibility float64 `json:"accessibility"` // вес 0.2
	Safety        float64 `json:"safety"`        // вес 0.1
}

// PickupCandidate — кандидат на точку посадки с разбивкой оценки
type PickupCandidate struct {
	Landmark             NearbyLandmark       `json:"landmark"`
	Score                float64              `json:"score"`
	Breakdown            PickupScoreBreakdown `json:"breakdown"`
	AvailableDrivers     int                  `json:"available_drivers"`
	EstimatedWaitMinutes int                  `json:"estimated_wait_time"`
}
