package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/campus-mobility-service/internal/cluster"
	"github.com/campus-mobility-service/internal/config"
	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/domain/repository"
	"github.com/campus-mobility-service/internal/geo"
	"go.uber.org/zap"
)

// Пределы секций оперативной сводки
const (
	maxPeakHours        = 5
	maxPopularLocations = 10
)

// ActivityUseCase обрабатывает бизнес-логику оперативной аналитики:
// сводка реального времени, тепловая карта, карта активности
type ActivityUseCase struct {
	activityRepo repository.ActivityRepository
	cacheRepo    repository.CacheRepository
	classifier   *geo.Classifier
	cfg          *config.Config
	logger       *zap.Logger
}

// NewActivityUseCase создает новый экземпляр ActivityUseCase
func NewActivityUseCase(
	activityRepo repository.ActivityRepository,
	cacheRepo repository.CacheRepository,
	classifier *geo.Classifier,
	cfg *config.Config,
	logger *zap.Logger,
) *ActivityUseCase {
	return &ActivityUseCase{
		activityRepo: activityRepo,
		cacheRepo:    cacheRepo,
		classifier:   classifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// GetRealTimeStats возвращает сводку текущей активности, используя кеш
// когда возможно. Каждая секция вычисляется независимо: ошибка
// подзапроса деградирует только свою секцию.
func (uc *ActivityUseCase) GetRealTimeStats(ctx context.Context) (*domain.RealTimeStats, error) {
	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetRealTimeStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Real-time stats fetched from cache")
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get real-time stats from cache", zap.Error(err))
	}

	// 2. Вычисляем заново
	stats := uc.computeRealTimeStats(ctx)

	// 3. Кешируем
	if err := uc.cacheRepo.SetRealTimeStats(ctx, stats, uc.cfg.Cache.RealTimeStatsTTL); err != nil {
		uc.logger.Warn("Failed to cache real-time stats", zap.Error(err))
	}

	return stats, nil
}

// RefreshRealTimeStats принудительно пересчитывает сводку и обновляет кеш
func (uc *ActivityUseCase) RefreshRealTimeStats(ctx context.Context) (*domain.RealTimeStats, error) {
	stats := uc.computeRealTimeStats(ctx)

	if err := uc.cacheRepo.SetRealTimeStats(ctx, stats, uc.cfg.Cache.RealTimeStatsTTL); err != nil {
		uc.logger.Warn("Failed to cache refreshed real-time stats", zap.Error(err))
	}

	return stats, nil
}

func (uc *ActivityUseCase) computeRealTimeStats(ctx context.Context) *domain.RealTimeStats {
	now := time.Now().UTC()

	return &domain.RealTimeStats{
		Timestamp:        now,
		ActiveUsers:      uc.activeUsers(ctx, now),
		BikeAvailability: uc.bikeAvailabilityStats(ctx, now),
		PeakHours:        uc.peakHours(ctx, now),
		PopularLocations: uc.popularLocations(ctx, now),
	}
}

func (uc *ActivityUseCase) activeUsers(ctx context.Context, now time.Time) domain.ActiveUsers {
	counts, err := uc.activityRepo.ActiveSessionCounts(ctx, now.Add(-uc.cfg.Analytics.ActiveWindow))
	if err != nil {
		uc.logger.Error("Failed to compute active users", zap.Error(err))
		return domain.ActiveUsers{Error: err.Error()}
	}

	drivers := counts.Drivers
	if drivers < 1 {
		drivers = 1
	}

	return domain.ActiveUsers{
		Total:      counts.Total,
		Drivers:    counts.Drivers,
		Passengers: counts.Passengers,
		Ratio:      round2(float64(counts.Passengers) / float64(drivers)),
	}
}

func (uc *ActivityUseCase) bikeAvailabilityStats(ctx context.Context, now time.Time) domain.BikeAvailabilityStats {
	counts, err := uc.activityRepo.BikeReportCounts(ctx, now.Add(-uc.cfg.Analytics.BikeWindow))
	if err != nil {
		uc.logger.Error("Failed to compute bike availability", zap.Error(err))
		return domain.BikeAvailabilityStats{Error: err.Error()}
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return domain.BikeAvailabilityStats{OverallStatus: "no_recent_data"}
	}

	distribution := make(map[domain.BikeAvailability]domain.AvailabilityShare, len(counts))
	for level, c := range counts {
		distribution[level] = domain.AvailabilityShare{
			Count:      c,
			Percentage: round1(float64(c) / float64(total) * 100),
		}
	}

	return domain.BikeAvailabilityStats{
		TotalReports:  total,
		Distribution:  distribution,
		OverallStatus: overallBikeStatus(distribution),
	}
}

// overallBikeStatus сворачивает распределение в одну оценку:
// high >= 50% — excellent, high+medium >= 60% — good,
// low+none >= 60% — poor, иначе moderate
func overallBikeStatus(distribution map[domain.BikeAvailability]domain.AvailabilityShare) string {
	high := distribution[domain.BikeHigh].Percentage
	medium := distribution[domain.BikeMedium].Percentage
	low := distribution[domain.BikeLow].Percentage
	none := distribution[domain.BikeNone].Percentage

	switch {
	case high >= 50:
		return "excellent"
	case high+medium >= 60:
		return "good"
	case low+none >= 60:
		return "poor"
	default:
		return "moderate"
	}
}

func (uc *ActivityUseCase) peakHours(ctx context.Context, now time.Time) domain.PeakHoursSection {
	activity, err := uc.activityRepo.HourlyActivity(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		uc.logger.Error("Failed to compute peak hours", zap.Error(err))
		return domain.PeakHoursSection{Error: err.Error()}
	}

	hours := make([]domain.PeakHour, 0, len(activity))
	for hour, count := range activity {
		hours = append(hours, domain.PeakHour{
			Hour:          hour,
			ActivityCount: count,
			TimeRange:     fmt.Sprintf("%02d:00-%02d:00", hour, hour+1),
		})
	}

	sort.Slice(hours, func(i, j int) bool {
		if hours[i].ActivityCount != hours[j].ActivityCount {
			return hours[i].ActivityCount > hours[j].ActivityCount
		}
		return hours[i].Hour < hours[j].Hour
	})

	if len(hours) > maxPeakHours {
		hours = hours[:maxPeakHours]
	}

	return domain.PeakHoursSection{Hours: hours}
}

func (uc *ActivityUseCase) popularLocations(ctx context.Context, now time.Time) domain.PopularLocations {
	samples, err := uc.activityRepo.LocationsSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		uc.logger.Error("Failed to compute popular locations", zap.Error(err))
		return domain.PopularLocations{Error: err.Error()}
	}
	if len(samples) == 0 {
		return domain.PopularLocations{}
	}

	byLandmark := make(map[string]int)
	for _, s := range samples {
		byLandmark[uc.classifier.NearestLandmark(s.Point)]++
	}

	locations := make([]domain.PopularLocation, 0, len(byLandmark))
	for label, count := range byLandmark {
		locations = append(locations, domain.PopularLocation{
			Location:      label,
			ActivityCount: count,
			Percentage:    round1(float64(count) / float64(len(samples)) * 100),
		})
	}

	sort.Slice(locations, func(i, j int) bool {
		if locations[i].ActivityCount != locations[j].ActivityCount {
			return locations[i].ActivityCount > locations[j].ActivityCount
		}
		return locations[i].Location < locations[j].Location
	})

	if len(locations) > maxPopularLocations {
		locations = locations[:maxPopularLocations]
	}

	return domain.PopularLocations{Locations: locations}
}

// GetHeatmap строит тепловую карту активности за окно timeRangeMinutes
func (uc *ActivityUseCase) GetHeatmap(ctx context.Context, timeRangeMinutes int) (*domain.Heatmap, error) {
	if timeRangeMinutes <= 0 {
		timeRangeMinutes = 60
	}

	now := time.Now().UTC()
	samples, err := uc.activityRepo.LocationsSince(ctx, now.Add(-time.Duration(timeRangeMinutes)*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("get heatmap locations: %w", err)
	}

	zoneActivity := make(map[domain.Zone]int)
	landmarkActivity := make(map[string]int)
	points := make([]domain.HeatmapPoint, 0, len(samples))

	for _, s := range samples {
		zoneActivity[uc.classifier.ResolveZone(s.Point)]++
		landmarkActivity[uc.classifier.NearestLandmark(s.Point)]++
		points = append(points, domain.HeatmapPoint{
			Point:     s.Point,
			Intensity: 1,
			Timestamp: s.Timestamp,
		})
	}

	heatmap := &domain.Heatmap{
		TimeRangeMinutes: timeRangeMinutes,
		TotalDataPoints:  len(samples),
		ZoneActivity:     zoneActivity,
		LandmarkActivity: landmarkActivity,
		Points:           points,
	}

	heatmap.Summary.MostActiveZone = domain.Zone(maxCountKey(zoneKeys(zoneActivity)))
	heatmap.Summary.MostActiveLandmark = maxCountKey(landmarkActivity)

	return heatmap, nil
}

// maxCountKey возвращает ключ с максимальным счетчиком, при равенстве
// побеждает лексикографически меньший; пустая карта дает ""
func maxCountKey(counts map[string]int) string {
	best := ""
	bestCount := -1
	for key, count := range counts {
		if count > bestCount || (count == bestCount && key < best) {
			best = key
			bestCount = count
		}
	}
	return best
}

func zoneKeys(activity map[domain.Zone]int) map[string]int {
	keys := make(map[string]int, len(activity))
	for zone, count := range activity {
		keys[string(zone)] = count
	}
	return keys
}

// GetActivityMap строит карту активности: кластеры, хотспоты, зоны, поток
func (uc *ActivityUseCase) GetActivityMap(ctx context.Context, timeWindowMinutes int) (*domain.ActivityMap, error) {
	if timeWindowMinutes <= 0 {
		timeWindowMinutes = 60
	}

	now := time.Now().UTC()
	samples, err := uc.activityRepo.ActiveRoleSamples(ctx, now.Add(-time.Duration(timeWindowMinutes)*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("get activity map samples: %w", err)
	}

	return &domain.ActivityMap{
		TimeWindowMinutes: timeWindowMinutes,
		TotalActiveUsers:  len(samples),
		Clusters:          cluster.BuildClusters(samples, uc.cfg.Analytics.ClusterRadius),
		Hotspots:          cluster.Hotspots(samples, uc.classifier),
		ZoneActivity:      uc.zoneActivity(samples),
		TrafficFlow:       trafficFlow(samples),
		GeneratedAt:       now,
	}, nil
}

func (uc *ActivityUseCase) zoneActivity(samples []domain.RoleSample) map[domain.Zone]domain.RoleCounts {
	activity := make(map[domain.Zone]domain.RoleCounts)

	for _, rs := range samples {
		zone := uc.classifier.ResolveZone(rs.Sample.Point)
		counts := activity[zone]
		counts.Total++
		if rs.Role == domain.RoleDriver {
			counts.Drivers++
		} else {
			counts.Passengers++
		}
		activity[zone] = counts
	}

	return activity
}

func trafficFlow(samples []domain.RoleSample) domain.TrafficFlow {
	unique := make(map[domain.Point]struct{}, len(samples))
	for _, rs := range samples {
		unique[rs.Sample.Point] = struct{}{}
	}

	denominator := len(unique)
	if denominator < 1 {
		denominator = 1
	}

	return domain.TrafficFlow{
		TotalMovements:  len(samples),
		UniqueLocations: len(unique),
		MovementDensity: float64(len(samples)) / float64(denominator),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
