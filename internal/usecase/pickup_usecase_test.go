package usecase_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/usecase"
)

func driverAt(lat, lng float64) domain.DriverPosition {
	return domain.DriverPosition{
		SessionID: uuid.New(),
		Point:     domain.Point{Lat: lat, Lng: lng},
		LastSeen:  time.Now().UTC(),
	}
}

func TestPickupUseCase_GetOptimalPickups(t *testing.T) {
	ctx := context.Background()
	mainGate := domain.Point{Lat: 7.5227, Lng: 4.5198}

	t.Run("scores landmark with nearby drivers", func(t *testing.T) {
		activityRepo := new(MockActivityRepository)
		uc := usecase.NewPickupUseCase(activityRepo, testClassifier(), testConfig(), zap.NewNop())

		// two drivers at the gate itself, one roughly 650 m east
		activityRepo.On("ActiveDriverPositions", ctx, mock.Anything).Return([]domain.DriverPosition{
			driverAt(7.5227, 4.5198),
			driverAt(7.5228, 4.5199),
			driverAt(7.5227, 4.5258),
		}, nil)

		// radius 50 m keeps Main Gate as the only candidate
		result, err := uc.GetOptimalPickups(ctx, mainGate, 50)

		assert.NoError(t, err)
		assert.Len(t, result, 1)

		candidate := result[0]
		assert.Equal(t, "main_gate", candidate.Landmark.ID)
		assert.Equal(t, 2, candidate.AvailableDrivers)
		assert.Equal(t, 6, candidate.EstimatedWaitMinutes)
		assert.Equal(t, 100.0, candidate.Breakdown.Distance)
		assert.Equal(t, 50.0, candidate.Breakdown.Drivers)
		assert.Equal(t, 90.0, candidate.Breakdown.Accessibility)
		assert.Equal(t, 90.0, candidate.Breakdown.Safety)
		// 100*0.3 + 50*0.4 + 90*0.2 + 90*0.1
		assert.Equal(t, 77.0, candidate.Score)
	})

	t.Run("no drivers gives long wait estimate", func(t *testing.T) {
		activityRepo := new(MockActivityRepository)
		uc := usecase.NewPickupUseCase(activityRepo, testClassifier(), testConfig(), zap.NewNop())

		activityRepo.On("ActiveDriverPositions", ctx, mock.Anything).Return([]domain.DriverPosition{}, nil)

		result, err := uc.GetOptimalPickups(ctx, mainGate, 50)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, 0, result[0].AvailableDrivers)
		assert.Equal(t, 15, result[0].EstimatedWaitMinutes)
		assert.Equal(t, 0.0, result[0].Breakdown.Drivers)
	})

	t.Run("driver score caps and wait floors with many drivers", func(t *testing.T) {
		activityRepo := new(MockActivityRepository)
		uc := usecase.NewPickupUseCase(activityRepo, testClassifier(), testConfig(), zap.NewNop())

		drivers := make([]domain.DriverPosition, 5)
		for i := range drivers {
			drivers[i] = driverAt(7.5227, 4.5198)
		}
		activityRepo.On("ActiveDriverPositions", ctx, mock.Anything).Return(drivers, nil)

		result, err := uc.GetOptimalPickups(ctx, mainGate, 50)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, 100.0, result[0].Breakdown.Drivers)
		assert.Equal(t, 2, result[0].EstimatedWaitMinutes)
	})

	t.Run("closer landmark never scores lower with equal factors", func(t *testing.T) {
		activityRepo := new(MockActivityRepository)
		uc := usecase.NewPickupUseCase(activityRepo, testClassifier(), testConfig(), zap.NewNop())

		activityRepo.On("ActiveDriverPositions", ctx, mock.Anything).Return([]domain.DriverPosition{}, nil)

		// passenger at Mozambique Hostel: the four hostels share category,
		// safety tier and zero drivers, so only distance separates them
		result, err := uc.GetOptimalPickups(ctx, domain.Point{Lat: 7.5280, Lng: 4.5167}, 500)

		assert.NoError(t, err)

		var hostels []domain.PickupCandidate
		for _, candidate := range result {
			if candidate.Landmark.Category == domain.CategoryHostel {
				hostels = append(hostels, candidate)
			}
		}
		assert.Len(t, hostels, 4)

		sort.Slice(hostels, func(i, j int) bool {
			return hostels[i].Landmark.DistanceMeters < hostels[j].Landmark.DistanceMeters
		})
		for i := 1; i < len(hostels); i++ {
			assert.GreaterOrEqual(t, hostels[i-1].Score, hostels[i].Score)
		}
		assert.Greater(t, hostels[0].Score, hostels[len(hostels)-1].Score)
	})

	t.Run("returns at most ten candidates sorted by score", func(t *testing.T) {
		activityRepo := new(MockActivityRepository)
		uc := usecase.NewPickupUseCase(activityRepo, testClassifier(), testConfig(), zap.NewNop())

		activityRepo.On("ActiveDriverPositions", ctx, mock.Anything).Return([]domain.DriverPosition{}, nil)

		result, err := uc.GetOptimalPickups(ctx, mainGate, 5000)

		assert.NoError(t, err)
		assert.Len(t, result, 10)
		for i := 1; i < len(result); i++ {
			assert.GreaterOrEqual(t, result[i-1].Score, result[i].Score)
		}
	})

	t.Run("uses configured radius when none given", func(t *testing.T) {
		activityRepo := new(MockActivityRepository)
		uc := usecase.NewPickupUseCase(activityRepo, testClassifier(), testConfig(), zap.NewNop())

		activityRepo.On("ActiveDriverPositions", ctx, mock.Anything).Return([]domain.DriverPosition{}, nil)

		result, err := uc.GetOptimalPickups(ctx, mainGate, 0)

		assert.NoError(t, err)
		assert.NotEmpty(t, result)
	})

	t.Run("no landmarks in radius returns empty list", func(t *testing.T) {
		activityRepo := new(MockActivityRepository)
		uc := usecase.NewPickupUseCase(activityRepo, testClassifier(), testConfig(), zap.NewNop())

		// far corner of campus with nothing within 10 m
		result, err := uc.GetOptimalPickups(ctx, domain.Point{Lat: 7.5100, Lng: 4.5400}, 10)

		assert.NoError(t, err)
		assert.Empty(t, result)
		activityRepo.AssertNotCalled(t, "ActiveDriverPositions", mock.Anything, mock.Anything)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		activityRepo := new(MockActivityRepository)
		uc := usecase.NewPickupUseCase(activityRepo, testClassifier(), testConfig(), zap.NewNop())

		activityRepo.On("ActiveDriverPositions", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

		result, err := uc.GetOptimalPickups(ctx, mainGate, 50)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
