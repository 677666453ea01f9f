package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/usecase"
)

func newDemandUseCase(repo *MockActivityRepository, cache *MockCacheRepository) *usecase.DemandUseCase {
	return usecase.NewDemandUseCase(repo, cache, testClassifier(), testConfig(), zap.NewNop())
}

// timeAtHour builds a UTC timestamp on a fixed Monday at the given hour
func timeAtHour(hour int) time.Time {
	return time.Date(2025, time.June, 2, hour, 15, 0, 0, time.UTC) // Monday
}

func TestDemandUseCase_GetDemandPatterns(t *testing.T) {
	ctx := context.Background()

	t.Run("returns cached patterns when available", func(t *testing.T) {
		repo := &MockActivityRepository{}
		cache := &MockCacheRepository{}
		cached := &domain.DemandPatterns{
			AnalysisPeriod: domain.AnalysisPeriod{Days: 7},
		}
		cache.On("GetDemandPatterns", ctx, 7).Return(cached, nil)

		uc := newDemandUseCase(repo, cache)
		patterns, err := uc.GetDemandPatterns(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, 7, patterns.AnalysisPeriod.Days)
		repo.AssertNotCalled(t, "PassengerSessionTimes")
	})

	t.Run("hourly distribution always has 24 buckets", func(t *testing.T) {
		repo := &MockActivityRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetDemandPatterns", ctx, 7).Return(nil, nil)
		cache.On("SetDemandPatterns", ctx, 7, mock.Anything, mock.Anything).Return(nil)

		times := []time.Time{
			timeAtHour(8), timeAtHour(8), timeAtHour(8),
			timeAtHour(17), timeAtHour(17),
		}
		repo.On("PassengerSessionTimes", ctx, mock.Anything, mock.Anything).Return(times, nil)
		repo.On("PassengerSamplesBetween", ctx, mock.Anything, mock.Anything).
			Return([]domain.LocationSample{}, nil)
		repo.On("PassengerCountAtHour", ctx, mock.Anything).Return(0, nil)

		uc := newDemandUseCase(repo, cache)
		patterns, err := uc.GetDemandPatterns(ctx, 7)

		assert.NoError(t, err)
		assert.Len(t, patterns.Hourly.Distribution, 24)
		assert.Equal(t, 3, patterns.Hourly.Distribution[8])
		assert.Equal(t, 0, patterns.Hourly.Distribution[3])
		assert.Equal(t, 8, patterns.Hourly.PeakHour)
		assert.Equal(t, 0, patterns.Hourly.LowestHour)
		assert.InDelta(t, 5.0/24, patterns.Hourly.AverageHourly, 1e-9)
	})

	t.Run("daily distribution contains only observed days", func(t *testing.T) {
		repo := &MockActivityRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetDemandPatterns", ctx, 7).Return(nil, nil)
		cache.On("SetDemandPatterns", ctx, 7, mock.Anything, mock.Anything).Return(nil)

		monday := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
		friday := time.Date(2025, time.June, 6, 9, 0, 0, 0, time.UTC)
		times := []time.Time{monday, monday, monday, friday}
		repo.On("PassengerSessionTimes", ctx, mock.Anything, mock.Anything).Return(times, nil)
		repo.On("PassengerSamplesBetween", ctx, mock.Anything, mock.Anything).
			Return([]domain.LocationSample{}, nil)
		repo.On("PassengerCountAtHour", ctx, mock.Anything).Return(0, nil)

		uc := newDemandUseCase(repo, cache)
		patterns, err := uc.GetDemandPatterns(ctx, 7)

		assert.NoError(t, err)
		assert.Len(t, patterns.Daily.Distribution, 2)
		assert.Equal(t, "Monday", patterns.Daily.BusiestDay)
		assert.Equal(t, "Friday", patterns.Daily.QuietestDay)
	})

	t.Run("location distribution sorted descending", func(t *testing.T) {
		repo := &MockActivityRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetDemandPatterns", ctx, 7).Return(nil, nil)
		cache.On("SetDemandPatterns", ctx, 7, mock.Anything, mock.Anything).Return(nil)

		now := time.Now().UTC()
		samples := []domain.LocationSample{
			sampleAt(7.5227, 4.5198, now), // Main Gate
			sampleAt(7.5227, 4.5198, now),
			sampleAt(7.5227, 4.5198, now),
			sampleAt(7.5198, 4.5234, now), // Sports Complex
		}
		repo.On("PassengerSessionTimes", ctx, mock.Anything, mock.Anything).
			Return([]time.Time{}, nil)
		repo.On("PassengerSamplesBetween", ctx, mock.Anything, mock.Anything).Return(samples, nil)
		repo.On("PassengerCountAtHour", ctx, mock.Anything).Return(0, nil)

		uc := newDemandUseCase(repo, cache)
		patterns, err := uc.GetDemandPatterns(ctx, 7)

		assert.NoError(t, err)
		locations := patterns.Location.LocationDistribution
		assert.Len(t, locations, 2)
		assert.Equal(t, "At Main Gate", locations[0].Location)
		assert.Equal(t, 3, locations[0].Count)

		zones := patterns.Location.ZoneDistribution
		assert.Equal(t, domain.ZoneAcademic, zones[0].Zone)
		assert.Equal(t, 3, zones[0].Count)

		assert.Len(t, patterns.Location.Hotspots, 2)
		assert.Equal(t, locations[0], patterns.Location.Hotspots[0])
	})
}

func TestDemandUseCase_Prediction(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		historical int
		expected   string
	}{
		{"over twenty is high", 25, "high"},
		{"between ten and twenty is medium", 15, "medium"},
		{"exactly twenty is medium", 20, "medium"},
		{"ten or less is low", 10, "low"},
		{"zero is low", 0, "low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockActivityRepository{}
			cache := &MockCacheRepository{}
			cache.On("GetDemandPatterns", ctx, 7).Return(nil, nil)
			cache.On("SetDemandPatterns", ctx, 7, mock.Anything, mock.Anything).Return(nil)
			repo.On("PassengerSessionTimes", ctx, mock.Anything, mock.Anything).
				Return([]time.Time{}, nil)
			repo.On("PassengerSamplesBetween", ctx, mock.Anything, mock.Anything).
				Return([]domain.LocationSample{}, nil)
			repo.On("PassengerCountAtHour", ctx, mock.Anything).Return(tt.historical, nil)

			uc := newDemandUseCase(repo, cache)
			patterns, err := uc.GetDemandPatterns(ctx, 7)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, patterns.Prediction.NextHourDemand)
			assert.Equal(t, "low", patterns.Prediction.Confidence)
			assert.NotEmpty(t, patterns.Prediction.Recommendation)
		})
	}
}

func TestDemandUseCase_Insights(t *testing.T) {
	ctx := context.Background()
	repo := &MockActivityRepository{}
	cache := &MockCacheRepository{}
	cache.On("GetDemandPatterns", ctx, 7).Return(nil, nil)
	cache.On("SetDemandPatterns", ctx, 7, mock.Anything, mock.Anything).Return(nil)

	now := time.Now().UTC()
	repo.On("PassengerSessionTimes", ctx, mock.Anything, mock.Anything).
		Return([]time.Time{timeAtHour(8), timeAtHour(8)}, nil)
	repo.On("PassengerSamplesBetween", ctx, mock.Anything, mock.Anything).
		Return([]domain.LocationSample{sampleAt(7.5227, 4.5198, now)}, nil)
	repo.On("PassengerCountAtHour", ctx, mock.Anything).Return(0, nil)

	uc := newDemandUseCase(repo, cache)
	patterns, err := uc.GetDemandPatterns(ctx, 7)

	assert.NoError(t, err)
	assert.Len(t, patterns.Insights, 3)
	assert.Contains(t, patterns.Insights[0], "08:00")
	assert.Contains(t, patterns.Insights[1], "Monday")
	assert.Contains(t, patterns.Insights[2], "At Main Gate")
}
