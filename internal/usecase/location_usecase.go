package usecase

import (
	"context"
	"time"

	"github.com/campus-mobility-service/internal/config"
	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/domain/repository"
	"github.com/campus-mobility-service/internal/geo"
	"github.com/campus-mobility-service/internal/pkg/errors"
	"go.uber.org/zap"
)

const (
	// nearbyActivityWindow — окно свежести для анализа активности вокруг точки
	nearbyActivityWindow = 10 * time.Minute
	// movementHistoryLimit — сколько последних замеров участвует в анализе движения
	movementHistoryLimit = 10
	// maxRealisticSpeedKmh — фильтр нереалистичных скачков GPS
	maxRealisticSpeedKmh = 50.0
	// contextLandmarkRadius — радиус контекстных ориентиров, метры
	contextLandmarkRadius = 500.0
	// maxContextLandmarks — сколько ближайших ориентиров попадает в контекст
	maxContextLandmarks = 5
)

// LocationUseCase обрабатывает бизнес-логику обогащения измерений:
// валидация, контекст, активность вокруг, паттерн движения, рекомендации
type LocationUseCase struct {
	activityRepo repository.ActivityRepository
	history      *HistoryCache
	classifier   *geo.Classifier
	cfg          *config.Config
	logger       *zap.Logger
}

// NewLocationUseCase создает новый экземпляр LocationUseCase
func NewLocationUseCase(
	activityRepo repository.ActivityRepository,
	history *HistoryCache,
	classifier *geo.Classifier,
	cfg *config.Config,
	logger *zap.Logger,
) *LocationUseCase {
	return &LocationUseCase{
		activityRepo: activityRepo,
		history:      history,
		classifier:   classifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// ValidateCoordinates выполняет полную проверку координат
func (uc *LocationUseCase) ValidateCoordinates(p domain.Point) *domain.CoordinateValidation {
	return uc.classifier.ValidateCoordinates(p)
}

// NearbyLandmarks возвращает ориентиры в радиусе radiusMeters,
// по возрастанию расстояния
func (uc *LocationUseCase) NearbyLandmarks(p domain.Point, radiusMeters float64) []domain.NearbyLandmark {
	if radiusMeters <= 0 {
		radiusMeters = contextLandmarkRadius
	}
	return uc.classifier.LandmarksWithin(p, radiusMeters)
}

// Landmarks возвращает ориентиры каталога, при непустой категории —
// только ее
func (uc *LocationUseCase) Landmarks(category domain.LandmarkCategory) ([]domain.Landmark, error) {
	if category == "" {
		return uc.classifier.Catalog().All(), nil
	}
	if !domain.ValidLandmarkCategory(category) {
		return nil, errors.ErrInvalidCategory
	}
	return uc.classifier.Catalog().ByCategory(category), nil
}

// ProcessLocationUpdate обогащает измерение контекстом, активностью
// вокруг и паттерном движения. Ошибки подвычислений деградируют свои
// секции и не прерывают обработку; невалидные координаты прерывают.
func (uc *LocationUseCase) ProcessLocationUpdate(ctx context.Context, sample domain.LocationSample) *domain.EnrichedSample {
	now := time.Now().UTC()

	enriched := &domain.EnrichedSample{
		Location:      sample,
		AccuracyLevel: sample.AccuracyLevel(),
		ProcessedAt:   now,
	}

	if !geo.ValidCoordinates(sample.Point) {
		enriched.Error = "Invalid location coordinates"
		return enriched
	}

	enriched.Context = uc.locationContext(sample.Point)
	enriched.NearbyActivity = uc.nearbyActivity(ctx, sample.Point, now)
	enriched.MovementPattern = uc.movementPattern(ctx, sample)
	enriched.Recommendations = uc.recommendations(sample, enriched.Context, enriched.NearbyActivity, now)

	uc.history.Append(sample.SessionID, sample)

	return enriched
}

func (uc *LocationUseCase) locationContext(p domain.Point) domain.LocationContext {
	nearby := uc.classifier.LandmarksWithin(p, contextLandmarkRadius)

	names := make([]string, 0, maxContextLandmarks)
	for _, lm := range nearby {
		if len(names) == maxContextLandmarks {
			break
		}
		names = append(names, lm.Name)
	}

	return domain.LocationContext{
		NearestLandmark: uc.classifier.NearestLandmark(p),
		Zone:            uc.classifier.ResolveZone(p),
		NearbyLandmarks: names,
		LocationType:    uc.locationType(p),
		Accessibility:   uc.accessibility(p),
		SafetyFeatures:  uc.safetyFeatures(p),
	}
}

// locationType — самая частая категория ориентиров в радиусе 200 м,
// при отсутствии ориентиров "general"
func (uc *LocationUseCase) locationType(p domain.Point) string {
	nearby := uc.classifier.LandmarksWithin(p, 200)
	if len(nearby) == 0 {
		return "general"
	}

	counts := make(map[string]int)
	for _, lm := range nearby {
		counts[string(lm.Category)]++
	}
	return maxCountKey(counts)
}

// accessibility оценивается по числу ориентиров в радиусе 100 м:
// два и более — high, один — medium, ни одного — low
func (uc *LocationUseCase) accessibility(p domain.Point) string {
	switch n := len(uc.classifier.LandmarksWithin(p, 100)); {
	case n >= 2:
		return "high"
	case n == 1:
		return "medium"
	default:
		return "low"
	}
}

func (uc *LocationUseCase) safetyFeatures(p domain.Point) []string {
	nearby := uc.classifier.LandmarksWithin(p, 150)

	var features []string
	for _, lm := range nearby {
		switch lm.Category {
		case domain.CategoryEntrance, domain.CategoryBuilding, domain.CategoryHospital:
			features = append(features, "Well-lit area nearby")
		}
		if len(features) > 0 {
			break
		}
	}

	for _, lm := range nearby {
		if domain.HasSecurityPresence(lm.ID) {
			features = append(features, "Security presence nearby")
			break
		}
	}

	if len(nearby) >= 3 {
		features = append(features, "Populated area")
	}

	return features
}

func (uc *LocationUseCase) nearbyActivity(ctx context.Context, p domain.Point, now time.Time) domain.NearbyActivity {
	radius := uc.cfg.Analytics.NearbyRadiusMeters

	samples, err := uc.activityRepo.ActiveRoleSamples(ctx, now.Add(-nearbyActivityWindow))
	if err != nil {
		uc.logger.Error("Failed to analyze nearby activity", zap.Error(err))
		return domain.NearbyActivity{RadiusMeters: radius, Error: err.Error()}
	}

	drivers, passengers := 0, 0
	bikeCounts := make(map[domain.BikeAvailability]int)
	var lastActivity *time.Time
	total := 0

	for _, rs := range samples {
		if geo.DistanceMeters(p, rs.Sample.Point) > radius {
			continue
		}
		total++
		if rs.Role == domain.RoleDriver {
			drivers++
		} else {
			passengers++
		}
		if rs.Sample.BikeAvailability != nil {
			bikeCounts[*rs.Sample.BikeAvailability]++
		}
		if lastActivity == nil || rs.Sample.Timestamp.After(*lastActivity) {
			t := rs.Sample.Timestamp
			lastActivity = &t
		}
	}

	denominator := passengers
	if denominator < 1 {
		denominator = 1
	}

	return domain.NearbyActivity{
		RadiusMeters:         radius,
		TotalNearbyUsers:     total,
		DriversNearby:        drivers,
		PassengersNearby:     passengers,
		DriverPassengerRatio: float64(drivers) / float64(denominator),
		BikeStatus:           dominantBikeStatus(bikeCounts),
		ActivityLevel:        activityLevel(total),
		LastActivity:         lastActivity,
	}
}

// dominantBikeStatus — самый частый уровень среди свежих отчетов,
// при отсутствии отчетов "unknown"
func dominantBikeStatus(counts map[domain.BikeAvailability]int) string {
	if len(counts) == 0 {
		return "unknown"
	}

	keys := make(map[string]int, len(counts))
	for level, count := range counts {
		keys[string(level)] = count
	}
	return maxCountKey(keys)
}

func activityLevel(count int) string {
	switch {
	case count >= 10:
		return "high"
	case count >= 5:
		return "medium"
	case count >= 1:
		return "low"
	default:
		return "none"
	}
}

// movementPattern анализирует перемещение сессии по истории замеров,
// новые первыми. История берется из кольца в памяти, при нехватке
// данных — из хранилища.
func (uc *LocationUseCase) movementPattern(ctx context.Context, sample domain.LocationSample) domain.MovementPattern {
	history := uc.history.Recent(sample.SessionID, movementHistoryLimit)
	if len(history) < 2 {
		stored, err := uc.activityRepo.SessionHistory(ctx, sample.SessionID, movementHistoryLimit)
		if err != nil {
			uc.logger.Warn("Failed to load session history", zap.Error(err))
		} else {
			history = stored
		}
	}

	if len(history) < 2 {
		return domain.MovementPattern{Status: "insufficient_data"}
	}

	totalDistance := 0.0
	speedSum := 0.0
	speedCount := 0

	for i := 0; i < len(history)-1; i++ {
		newer, older := history[i], history[i+1]
		distance := geo.Distance(newer.Point, older.Point)
		totalDistance += distance

		hours := newer.Timestamp.Sub(older.Timestamp).Hours()
		if hours <= 0 {
			continue
		}
		speed := distance / hours
		if speed < maxRealisticSpeedKmh {
			speedSum += speed
			speedCount++
		}
	}

	avgSpeed := 0.0
	if speedCount > 0 {
		avgSpeed = speedSum / float64(speedCount)
	}

	return domain.MovementPattern{
		TotalDistanceKm: round2(totalDistance),
		AverageSpeedKmh: round1(avgSpeed),
		MovementType:    classifyMovement(avgSpeed, totalDistance),
		LocationChanges: len(history),
		TimeSpanMinutes: history[0].Timestamp.Sub(history[len(history)-1].Timestamp).Minutes(),
		IsStationary:    avgSpeed < 1,
		EstimatedMode:   estimateTransportMode(avgSpeed),
	}
}

func classifyMovement(avgSpeedKmh, totalDistanceKm float64) string {
	switch {
	case avgSpeedKmh < 1 && totalDistanceKm < 0.1:
		return "stationary"
	case avgSpeedKmh < 5:
		return "walking"
	case avgSpeedKmh <= 20:
		return "cycling"
	default:
		return "vehicle"
	}
}

func estimateTransportMode(avgSpeedKmh float64) string {
	switch {
	case avgSpeedKmh < 2:
		return "on_foot"
	case avgSpeedKmh <= 8:
		return "bicycle"
	case avgSpeedKmh <= 25:
		return "motorcycle"
	default:
		return "car"
	}
}

func (uc *LocationUseCase) recommendations(
	sample domain.LocationSample,
	context domain.LocationContext,
	activity domain.NearbyActivity,
	now time.Time,
) []string {
	var recommendations []string

	if sample.BikeAvailability != nil {
		switch *sample.BikeAvailability {
		case domain.BikeNone:
			recommendations = append(recommendations, "No bikes available at current location. Consider moving to nearby landmarks.")
		case domain.BikeLow:
			recommendations = append(recommendations, "Limited bikes available. Book quickly or consider alternative locations.")
		case domain.BikeHigh:
			recommendations = append(recommendations, "Good bike availability at your location.")
		}
	}

	if activity.Error == "" {
		if activity.DriversNearby == 0 {
			recommendations = append(recommendations, "No drivers nearby. You may experience longer wait times.")
		} else if activity.DriverPassengerRatio > 2 {
			recommendations = append(recommendations, "Good driver availability in your area.")
		}
	}

	hour := now.Hour()
	switch context.LocationType {
	case string(domain.CategoryFaculty), string(domain.CategoryLibrary):
		if hour == 8 || hour == 9 || hour == 16 || hour == 17 {
			recommendations = append(recommendations, "Peak academic hours - expect higher demand.")
		}
	case string(domain.CategoryHostel):
		if hour == 7 || hour == 8 || hour == 18 || hour == 19 {
			recommendations = append(recommendations, "Peak residential movement time - plan accordingly.")
		}
	}

	if hour >= 20 || hour <= 6 {
		recommendations = append(recommendations, "Late hours - prioritize well-lit, populated pickup locations.")
	}

	recommendations = append(recommendations, "Check weather conditions before traveling.")

	return recommendations
}
