package repository

import (
	"context"
	"time"

	"github.com/campus-mobility-service/internal/domain"
	"github.com/google/uuid"
)

// ActivityRepository — read-only снапшот данных о сессиях, перемещениях
// и тревожных событиях. Ядро аналитики никогда не пишет: все методы —
// чтение на момент вызова, расхождение между запросами внутри одного
// отчета допустимо.
type ActivityRepository interface {
	// ActiveSessionCounts возвращает количество активных сессий по ролям
	// с last_seen не раньше since
	ActiveSessionCounts(ctx context.Context, since time.Time) (*domain.SessionCounts, error)

	// BikeReportCounts возвращает количество отчетов по каждому уровню
	// доступности велосипедов начиная с since
	BikeReportCounts(ctx context.Context, since time.Time) (map[domain.BikeAvailability]int, error)

	// HourlyActivity возвращает количество измерений по часам суток начиная с since
	HourlyActivity(ctx context.Context, since time.Time) (map[int]int, error)

	// LocationsSince возвращает все измерения начиная с since
	LocationsSince(ctx context.Context, since time.Time) ([]domain.LocationSample, error)

	// ActiveRoleSamples возвращает измерения активных сессий вместе с ролями
	ActiveRoleSamples(ctx context.Context, since time.Time) ([]domain.RoleSample, error)

	// PassengerSessionTimes возвращает created_at пассажирских сессий в интервале
	PassengerSessionTimes(ctx context.Context, from, to time.Time) ([]time.Time, error)

	// PassengerSamplesBetween возвращает измерения пассажирских сессий в интервале
	PassengerSamplesBetween(ctx context.Context, from, to time.Time) ([]domain.LocationSample, error)

	// PassengerCountAtHour возвращает историческое количество пассажирских
	// сессий, созданных в указанный час суток
	PassengerCountAtHour(ctx context.Context, hour int) (int, error)

	// ActiveDriverPositions возвращает последнюю позицию каждого активного водителя
	ActiveDriverPositions(ctx context.Context, since time.Time) ([]domain.DriverPosition, error)

	// SessionHistory возвращает последние измерения сессии, новые первыми
	SessionHistory(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.LocationSample, error)

	// AlertsSince возвращает тревожные события начиная с since
	AlertsSince(ctx context.Context, since time.Time) ([]domain.EmergencyAlert, error)
}
