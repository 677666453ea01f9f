package domain

import (
	"time"

	"github.com/google/uuid"
)

// BikeAvailability — уровень доступности велосипедов в точке
type BikeAvailability string

const (
	BikeHigh   BikeAvailability = "high"
	BikeMedium BikeAvailability = "medium"
	BikeLow    BikeAvailability = "low"
	BikeNone   BikeAvailability = "none"
)

// BikeAvailabilityLevels — все уровни в фиксированном порядке
var BikeAvailabilityLevels = []BikeAvailability{BikeHigh, BikeMedium, BikeLow, BikeNone}

// AccuracyLevel — качественная оценка точности GPS-замера
type AccuracyLevel string

const (
	AccuracyHigh    AccuracyLevel = "high"   // < 10 метров
	AccuracyMedium  AccuracyLevel = "medium" // 10-50 метров
	AccuracyLow     AccuracyLevel = "low"    // > 50 метров
	AccuracyUnknown AccuracyLevel = "unknown"
)

// LocationSample — одно измерение местоположения (read-only строка снапшота)
type LocationSample struct {
	ID               uuid.UUID         `json:"id" db:"id"`
	SessionID        uuid.UUID         `json:"session_id" db:"session_id"`
	Point            Point             `json:"point"`
	Timestamp        time.Time         `json:"timestamp" db:"timestamp"`
	BikeAvailability *BikeAvailability `json:"bike_availability,omitempty" db:"bike_availability"`
	Accuracy         *float64          `json:"accuracy,omitempty" db:"accuracy"`
	Heading          *float64          `json:"heading,omitempty" db:"heading"`
	Speed            *float64          `json:"speed,omitempty" db:"speed"`
}

// AccuracyLevel возвращает качественную оценку точности замера
func (s *LocationSample) AccuracyLevel() AccuracyLevel {
	switch {
	case s.Accuracy == nil:
		return AccuracyUnknown
	case *s.Accuracy < 10:
		return AccuracyHigh
	case *s.Accuracy < 50:
		return AccuracyMedium
	default:
		return AccuracyLow
	}
}

// RoleSample — измерение местоположения вместе с ролью сессии
type RoleSample struct {
	Sample LocationSample `json:"sample"`
	Role   Role           `json:"role" db:"role"`
}
