package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/campus-mobility-service/internal/config"
	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/domain/repository"
	"github.com/campus-mobility-service/internal/geo"
	"go.uber.org/zap"
)

const (
	// driverProximityMeters — радиус учета водителей вокруг ориентира
	driverProximityMeters = 500.0
	// maxPickupCandidates — размер списка рекомендаций
	maxPickupCandidates = 10
	// noDriverWaitMinutes — оценка ожидания без водителей поблизости
	noDriverWaitMinutes = 15
)

// Веса составляющих оценки точки посадки
const (
	distanceWeight      = 0.3
	driversWeight       = 0.4
	accessibilityWeight = 0.2
	safetyWeight        = 0.1
)

// PickupUseCase обрабатывает бизнес-логику подбора точек посадки
type PickupUseCase struct {
	activityRepo repository.ActivityRepository
	classifier   *geo.Classifier
	cfg          *config.Config
	logger       *zap.Logger
}

// NewPickupUseCase создает новый экземпляр PickupUseCase
func NewPickupUseCase(
	activityRepo repository.ActivityRepository,
	classifier *geo.Classifier,
	cfg *config.Config,
	logger *zap.Logger,
) *PickupUseCase {
	return &PickupUseCase{
		activityRepo: activityRepo,
		classifier:   classifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// GetOptimalPickups подбирает точки посадки вокруг пассажира: ориентиры
// в радиусе поиска оцениваются по расстоянию, доступности водителей,
// типу ориентира и безопасности, лучшие первыми
func (uc *PickupUseCase) GetOptimalPickups(ctx context.Context, passenger domain.Point, maxDistanceMeters float64) ([]domain.PickupCandidate, error) {
	if maxDistanceMeters <= 0 {
		maxDistanceMeters = uc.cfg.Analytics.PickupRadiusMeters
	}

	landmarks := uc.classifier.LandmarksWithin(passenger, maxDistanceMeters)
	if len(landmarks) == 0 {
		return []domain.PickupCandidate{}, nil
	}

	since := time.Now().UTC().Add(-uc.cfg.Analytics.ActiveWindow)
	drivers, err := uc.activityRepo.ActiveDriverPositions(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("get active driver positions: %w", err)
	}

	candidates := make([]domain.PickupCandidate, 0, len(landmarks))
	for _, lm := range landmarks {
		candidates = append(candidates, scorePickup(lm, drivers))
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Landmark.DistanceMeters < candidates[j].Landmark.DistanceMeters
	})

	if len(candidates) > maxPickupCandidates {
		candidates = candidates[:maxPickupCandidates]
	}
	return candidates, nil
}

func scorePickup(lm domain.NearbyLandmark, drivers []domain.DriverPosition) domain.PickupCandidate {
	distanceKm := lm.DistanceMeters / 1000

	distanceScore := 100 - distanceKm*50
	if distanceScore < 0 {
		distanceScore = 0
	}

	nearbyDrivers := 0
	for _, d := range drivers {
		if geo.DistanceMeters(d.Point, lm.Point) <= driverProximityMeters {
			nearbyDrivers++
		}
	}

	driverScore := float64(nearbyDrivers) * 25
	if driverScore > 100 {
		driverScore = 100
	}

	accessibilityScore := domain.AccessibilityScore(lm.Category)

	safetyScore := 70.0
	if domain.IsSafePickupLandmark(lm.ID) {
		safetyScore = 90.0
	}

	waitMinutes := noDriverWaitMinutes
	if nearbyDrivers > 0 {
		waitMinutes = 10 - nearbyDrivers*2
		if waitMinutes < 2 {
			waitMinutes = 2
		}
	}

	total := distanceScore*distanceWeight +
		driverScore*driversWeight +
		accessibilityScore*accessibilityWeight +
		safetyScore*safetyWeight

	return domain.PickupCandidate{
		Landmark: lm,
		Score:    round1(total),
		Breakdown: domain.PickupScoreBreakdown{
			Distance:      distanceScore,
			Drivers:       driverScore,
			Accessibility: accessibilityScore,
			Safety:        safetyScore,
		},
		AvailableDrivers:     nearbyDrivers,
		EstimatedWaitMinutes: waitMinutes,
	}
}
