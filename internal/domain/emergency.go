package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyAlert — тревожное событие (read-only строка снапшота)
type EmergencyAlert struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	SessionID           uuid.UUID  `json:"session_id" db:"session_id"`
	Point               Point      `json:"point"`
	AlertType           string     `json:"alert_type" db:"alert_type"` // panic, medical, security
	Message             *string    `json:"message,omitempty" db:"message"`
	IsResolved          bool       `json:"is_resolved" db:"is_resolved"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
	AuthoritiesNotified bool       `json:"authorities_notified" db:"authorities_notified"`
}
