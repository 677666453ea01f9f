package usecase_test

import (
	"context"
	"time"

	"github.com/campus-mobility-service/internal/config"
	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/geo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockActivityRepository is a mock of ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) ActiveSessionCounts(ctx context.Context, since time.Time) (*domain.SessionCounts, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionCounts), args.Error(1)
}

func (m *MockActivityRepository) BikeReportCounts(ctx context.Context, since time.Time) (map[domain.BikeAvailability]int, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.BikeAvailability]int), args.Error(1)
}

func (m *MockActivityRepository) HourlyActivity(ctx context.Context, since time.Time) (map[int]int, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int), args.Error(1)
}

func (m *MockActivityRepository) LocationsSince(ctx context.Context, since time.Time) ([]domain.LocationSample, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationSample), args.Error(1)
}

func (m *MockActivityRepository) ActiveRoleSamples(ctx context.Context, since time.Time) ([]domain.RoleSample, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoleSample), args.Error(1)
}

func (m *MockActivityRepository) PassengerSessionTimes(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockActivityRepository) PassengerSamplesBetween(ctx context.Context, from, to time.Time) ([]domain.LocationSample, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationSample), args.Error(1)
}

func (m *MockActivityRepository) PassengerCountAtHour(ctx context.Context, hour int) (int, error) {
	args := m.Called(ctx, hour)
	return args.Int(0), args.Error(1)
}

func (m *MockActivityRepository) ActiveDriverPositions(ctx context.Context, since time.Time) ([]domain.DriverPosition, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DriverPosition), args.Error(1)
}

func (m *MockActivityRepository) SessionHistory(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.LocationSample, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocationSample), args.Error(1)
}

func (m *MockActivityRepository) AlertsSince(ctx context.Context, since time.Time) ([]domain.EmergencyAlert, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmergencyAlert), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetRealTimeStats(ctx context.Context) (*domain.RealTimeStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RealTimeStats), args.Error(1)
}

func (m *MockCacheRepository) SetRealTimeStats(ctx context.Context, stats *domain.RealTimeStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetDemandPatterns(ctx context.Context, daysBack int) (*domain.DemandPatterns, error) {
	args := m.Called(ctx, daysBack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DemandPatterns), args.Error(1)
}

func (m *MockCacheRepository) SetDemandPatterns(ctx context.Context, daysBack int, patterns *domain.DemandPatterns, ttl time.Duration) error {
	args := m.Called(ctx, daysBack, patterns, ttl)
	return args.Error(0)
}

// testConfig returns config with defaults used across usecase tests
func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			RealTimeStatsTTL: 30 * time.Second,
			DemandTTL:        5 * time.Minute,
		},
		Campus: config.CampusConfig{
			CenterLat: 7.5227,
			CenterLng: 4.5198,
			RadiusKm:  5.0,
		},
		Analytics: config.AnalyticsConfig{
			ActiveWindow:       5 * time.Minute,
			BikeWindow:         10 * time.Minute,
			NearbyRadiusMeters: 500,
			ClusterRadius:      100,
			PickupRadiusMeters: 1000,
			DemandDaysBack:     7,
			SafetyDaysBack:     30,
			HistoryCapacity:    50,
		},
	}
}

func testClassifier() *geo.Classifier {
	return geo.NewClassifier(
		geo.DefaultCatalog(),
		domain.Point{Lat: 7.5227, Lng: 4.5198},
		5.0,
	)
}

func sampleAt(lat, lng float64, ts time.Time) domain.LocationSample {
	return domain.LocationSample{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		Point:     domain.Point{Lat: lat, Lng: lng},
		Timestamp: ts,
	}
}
