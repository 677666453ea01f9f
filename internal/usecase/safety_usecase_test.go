package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/usecase"
)

func newSafetyUseCase(repo *MockActivityRepository) *usecase.SafetyUseCase {
	return usecase.NewSafetyUseCase(repo, testClassifier(), testConfig(), zap.NewNop())
}

func alertAt(lat, lng float64, alertType string, resolved, notified bool, createdAt time.Time) domain.EmergencyAlert {
	return domain.EmergencyAlert{
		ID:                  uuid.New(),
		SessionID:           uuid.New(),
		Point:               domain.Point{Lat: lat, Lng: lng},
		AlertType:           alertType,
		IsResolved:          resolved,
		CreatedAt:           createdAt,
		AuthoritiesNotified: notified,
	}
}

func TestSafetyUseCase_GetSafetyAnalytics(t *testing.T) {
	ctx := context.Background()

	t.Run("no incidents yields perfect metrics", func(t *testing.T) {
		repo := &MockActivityRepository{}
		repo.On("AlertsSince", ctx, mock.Anything).Return([]domain.EmergencyAlert{}, nil)

		uc := newSafetyUseCase(repo)
		report, err := uc.GetSafetyAnalytics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 30, report.PeriodDays)
		assert.Zero(t, report.TotalIncidents)
		assert.Equal(t, 100.0, report.Metrics.SafetyScore)
		assert.Equal(t, 100.0, report.Metrics.ResponseRate)
		assert.Nil(t, report.Metrics.AvgResolutionMinutes)
		// only the general recommendations remain
		assert.Len(t, report.Recommendations, 3)
	})

	t.Run("score penalizes incidents and unresolved ones", func(t *testing.T) {
		repo := &MockActivityRepository{}
		created := time.Now().UTC().Add(-2 * time.Hour)

		alerts := make([]domain.EmergencyAlert, 0, 10)
		for i := 0; i < 8; i++ {
			resolvedAt := created.Add(30 * time.Minute)
			a := alertAt(7.5227, 4.5198, "panic", true, true, created)
			a.ResolvedAt = &resolvedAt
			alerts = append(alerts, a)
		}
		for i := 0; i < 2; i++ {
			alerts = append(alerts, alertAt(7.5227, 4.5198, "medical", false, false, created))
		}
		repo.On("AlertsSince", ctx, mock.Anything).Return(alerts, nil)

		uc := newSafetyUseCase(repo)
		report, err := uc.GetSafetyAnalytics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 10, report.TotalIncidents)
		// 100 - 10*5 - 2*10 = 30
		assert.Equal(t, 30.0, report.Metrics.SafetyScore)
		// 8 of 10 notified
		assert.Equal(t, 80.0, report.Metrics.ResponseRate)
		assert.NotNil(t, report.Metrics.AvgResolutionMinutes)
		assert.Equal(t, 30.0, *report.Metrics.AvgResolutionMinutes)
	})

	t.Run("score never drops below zero", func(t *testing.T) {
		repo := &MockActivityRepository{}
		created := time.Now().UTC()

		var alerts []domain.EmergencyAlert
		for i := 0; i < 30; i++ {
			alerts = append(alerts, alertAt(7.5227, 4.5198, "security", false, true, created))
		}
		repo.On("AlertsSince", ctx, mock.Anything).Return(alerts, nil)

		uc := newSafetyUseCase(repo)
		report, err := uc.GetSafetyAnalytics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, report.Metrics.SafetyScore)
	})

	t.Run("patterns group by type, location and hour", func(t *testing.T) {
		repo := &MockActivityRepository{}
		at9 := time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC)
		at21 := time.Date(2025, time.June, 2, 21, 0, 0, 0, time.UTC)

		alerts := []domain.EmergencyAlert{
			alertAt(7.5227, 4.5198, "panic", true, true, at9),    // Main Gate
			alertAt(7.5227, 4.5198, "panic", true, true, at21),   // Main Gate
			alertAt(7.5198, 4.5234, "medical", true, true, at21), // Sports Complex
		}
		alerts[0].ResolvedAt = &at21
		repo.On("AlertsSince", ctx, mock.Anything).Return(alerts, nil)

		uc := newSafetyUseCase(repo)
		report, err := uc.GetSafetyAnalytics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 2, report.Patterns.ByType["panic"])
		assert.Equal(t, 1, report.Patterns.ByType["medical"])
		assert.Equal(t, 2, report.Patterns.ByLocation["At Main Gate"])
		assert.Equal(t, 2, report.Patterns.ByHour[21])
		assert.Equal(t, 1, report.Patterns.ByHour[9])

		// targeted recommendations come before the general ones
		assert.Contains(t, report.Recommendations[0], "At Main Gate")
		assert.Contains(t, report.Recommendations[1], "21:00")
	})
}
