package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type activityRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewActivityRepository создает новый экземпляр activity repository
func NewActivityRepository(db *DB, logger *zap.Logger) repository.ActivityRepository {
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

// ActiveSessionCounts возвращает количество активных сессий по ролям
func (r *activityRepository) ActiveSessionCounts(ctx context.Context, since time.Time) (*domain.SessionCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE role = 'driver') AS drivers,
			COUNT(*) FILTER (WHERE role = 'passenger') AS passengers
		FROM user_sessions
		WHERE is_active = true AND last_seen >= $1
	`

	var counts domain.SessionCounts
	if err := r.db.GetContext(ctx, &counts, query, since); err != nil {
		r.logger.Error("Failed to count active sessions", zap.Error(err))
		return nil, fmt.Errorf("count active sessions: %w", err)
	}

	return &counts, nil
}

// BikeReportCounts возвращает количество отчетов по каждому уровню доступности
func (r *activityRepository) BikeReportCounts(ctx context.Context, since time.Time) (map[domain.BikeAvailability]int, error) {
	levels := make([]string, 0, len(domain.BikeAvailabilityLevels))
	for _, l := range domain.BikeAvailabilityLevels {
		levels = append(levels, string(l))
	}

	query := `
		SELECT bike_availability, COUNT(*) AS count
		FROM location_updates
		WHERE timestamp >= $1 AND bike_availability = ANY($2)
		GROUP BY bike_availability
	`

	rows, err := r.db.QueryContext(ctx, query, since, pq.Array(levels))
	if err != nil {
		r.logger.Error("Failed to count bike reports", zap.Error(err))
		return nil, fmt.Errorf("count bike reports: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.BikeAvailability]int)
	for rows.Next() {
		var level domain.BikeAvailability
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("scan bike report counts: %w", err)
		}
		counts[level] = count
	}

	return counts, rows.Err()
}

// HourlyActivity возвращает количество измерений по часам суток
func (r *activityRepository) HourlyActivity(ctx context.Context, since time.Time) (map[int]int, error) {
	query := `
		SELECT EXTRACT(HOUR FROM timestamp)::int AS hour, COUNT(*) AS count
		FROM location_updates
		WHERE timestamp >= $1
		GROUP BY hour
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		r.logger.Error("Failed to query hourly activity", zap.Error(err))
		return nil, fmt.Errorf("query hourly activity: %w", err)
	}
	defer rows.Close()

	activity := make(map[int]int)
	for rows.Next() {
		var hour, count int
		if err := rows.Scan(&hour, &count); err != nil {
			return nil, fmt.Errorf("scan hourly activity: %w", err)
		}
		activity[hour] = count
	}

	return activity, rows.Err()
}

// LocationsSince возвращает все измерения начиная с since
func (r *activityRepository) LocationsSince(ctx context.Context, since time.Time) ([]domain.LocationSample, error) {
	query := `
		SELECT id, session_id, latitude, longitude, timestamp,
		       bike_availability, accuracy, heading, speed
		FROM location_updates
		WHERE timestamp >= $1
		ORDER BY timestamp
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		r.logger.Error("Failed to query locations", zap.Error(err))
		return nil, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	var samples []domain.LocationSample
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, *s)
	}

	return samples, rows.Err()
}

// ActiveRoleSamples возвращает измерения активных сессий вместе с ролями
func (r *activityRepository) ActiveRoleSamples(ctx context.Context, since time.Time) ([]domain.RoleSample, error) {
	query := `
		SELECT l.id, l.session_id, l.latitude, l.longitude, l.timestamp,
		       l.bike_availability, l.accuracy, l.heading, l.speed, s.role
		FROM location_updates l
		JOIN user_sessions s ON s.id = l.session_id
		WHERE s.is_active = true AND l.timestamp >= $1
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		r.logger.Error("Failed to query role samples", zap.Error(err))
		return nil, fmt.Errorf("query role samples: %w", err)
	}
	defer rows.Close()

	var result []domain.RoleSample
	for rows.Next() {
		var rs domain.RoleSample
		err := rows.Scan(
			&rs.Sample.ID, &rs.Sample.SessionID,
			&rs.Sample.Point.Lat, &rs.Sample.Point.Lng, &rs.Sample.Timestamp,
			&rs.Sample.BikeAvailability, &rs.Sample.Accuracy,
			&rs.Sample.Heading, &rs.Sample.Speed, &rs.Role,
		)
		if err != nil {
			return nil, fmt.Errorf("scan role sample: %w", err)
		}
		result = append(result, rs)
	}

	return result, rows.Err()
}

// PassengerSessionTimes возвращает created_at пассажирских сессий в интервале
func (r *activityRepository) PassengerSessionTimes(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	query := `
		SELECT created_at
		FROM user_sessions
		WHERE role = 'passenger' AND created_at >= $1 AND created_at < $2
	`

	var times []time.Time
	if err := r.db.SelectContext(ctx, &times, query, from, to); err != nil {
		r.logger.Error("Failed to query passenger session times", zap.Error(err))
		return nil, fmt.Errorf("query passenger session times: %w", err)
	}

	return times, nil
}

// PassengerSamplesBetween возвращает измерения пассажирских сессий в интервале
func (r *activityRepository) PassengerSamplesBetween(ctx context.Context, from, to time.Time) ([]domain.LocationSample, error) {
	query := `
		SELECT l.id, l.session_id, l.latitude, l.longitude, l.timestamp,
		       l.bike_availability, l.accuracy, l.heading, l.speed
		FROM location_updates l
		JOIN user_sessions s ON s.id = l.session_id
		WHERE s.role = 'passenger' AND l.timestamp >= $1 AND l.timestamp < $2
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		r.logger.Error("Failed to query passenger samples", zap.Error(err))
		return nil, fmt.Errorf("query passenger samples: %w", err)
	}
	defer rows.Close()

	var samples []domain.LocationSample
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, *s)
	}

	return samples, rows.Err()
}

// PassengerCountAtHour возвращает историческое количество пассажирских
// сессий, созданных в указанный час суток
func (r *activityRepository) PassengerCountAtHour(ctx context.Context, hour int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM user_sessions
		WHERE role = 'passenger' AND EXTRACT(HOUR FROM created_at)::int = $1
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, hour); err != nil {
		r.logger.Error("Failed to count passengers at hour", zap.Int("hour", hour), zap.Error(err))
		return 0, fmt.Errorf("count passengers at hour: %w", err)
	}

	return count, nil
}

// ActiveDriverPositions возвращает последнюю позицию каждого активного водителя
func (r *activityRepository) ActiveDriverPositions(ctx context.Context, since time.Time) ([]domain.DriverPosition, error) {
	query := `
		SELECT DISTINCT ON (l.session_id)
		       l.session_id, l.latitude, l.longitude, l.timestamp
		FROM location_updates l
		JOIN user_sessions s ON s.id = l.session_id
		WHERE s.role = 'driver' AND s.is_active = true AND l.timestamp >= $1
		ORDER BY l.session_id, l.timestamp DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		r.logger.Error("Failed to query driver positions", zap.Error(err))
		return nil, fmt.Errorf("query driver positions: %w", err)
	}
	defer rows.Close()

	var positions []domain.DriverPosition
	for rows.Next() {
		var p domain.DriverPosition
		if err := rows.Scan(&p.SessionID, &p.Point.Lat, &p.Point.Lng, &p.LastSeen); err != nil {
			return nil, fmt.Errorf("scan driver position: %w", err)
		}
		positions = append(positions, p)
	}

	return positions, rows.Err()
}

// SessionHistory возвращает последние измерения сессии, новые первыми
func (r *activityRepository) SessionHistory(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.LocationSample, error) {
	query := `
		SELECT id, session_id, latitude, longitude, timestamp,
		       bike_availability, accuracy, heading, speed
		FROM location_updates
		WHERE session_id = $1
		ORDER BY timestamp DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		r.logger.Error("Failed to query session history", zap.String("session_id", sessionID.String()), zap.Error(err))
		return nil, fmt.Errorf("query session history: %w", err)
	}
	defer rows.Close()

	var samples []domain.LocationSample
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, *s)
	}

	return samples, rows.Err()
}

// AlertsSince возвращает тревожные события начиная с since
func (r *activityRepository) AlertsSince(ctx context.Context, since time.Time) ([]domain.EmergencyAlert, error) {
	query := `
		SELECT id, session_id, latitude, longitude, alert_type, message,
		       is_resolved, created_at, resolved_at, authorities_notified
		FROM emergency_alerts
		WHERE created_at >= $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		r.logger.Error("Failed to query emergency alerts", zap.Error(err))
		return nil, fmt.Errorf("query emergency alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.EmergencyAlert
	for rows.Next() {
		var a domain.EmergencyAlert
		err := rows.Scan(
			&a.ID, &a.SessionID, &a.Point.Lat, &a.Point.Lng, &a.AlertType,
			&a.Message, &a.IsResolved, &a.CreatedAt, &a.ResolvedAt, &a.AuthoritiesNotified,
		)
		if err != nil {
			return nil, fmt.Errorf("scan emergency alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSample(rows rowScanner) (*domain.LocationSample, error) {
	var s domain.LocationSample
	err := rows.Scan(
		&s.ID, &s.SessionID, &s.Point.Lat, &s.Point.Lng, &s.Timestamp,
		&s.BikeAvailability, &s.Accuracy, &s.Heading, &s.Speed,
	)
	if err != nil {
		return nil, fmt.Errorf("scan location sample: %w", err)
	}
	return &s, nil
}
