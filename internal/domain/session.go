package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role — роль пользователя в сессии
type Role string

const (
	RolePassenger Role = "passenger"
	RoleDriver    Role = "driver"
)

// UserSession — сессия пользователя (read-only строка снапшота)
type UserSession struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Role      Role      `json:"role" db:"role"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	LastSeen  time.Time `json:"last_seen" db:"last_seen"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SessionCounts — количество активных сессий по ролям
type SessionCounts struct {
	Total      int `json:"total" db:"total"`
	Drivers    int `json:"drivers" db:"drivers"`
	Passengers int `json:"passengers" db:"passengers"`
}

// DriverPosition — последняя известная позиция активного водителя
type DriverPosition struct {
	SessionID uuid.UUID `json:"session_id" db:"session_id"`
	Point     Point     `json:"point"`
	LastSeen  time.Time `json:"last_seen" db:"last_seen"`
}
