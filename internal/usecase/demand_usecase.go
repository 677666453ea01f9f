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

// maxDemandHotspots — размер списка самых востребованных ориентиров
const maxDemandHotspots = 5

// weekdayOrder — фиксированный порядок дней для детерминированных выборок
var weekdayOrder = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// demandRecommendations — рекомендация по уровню прогнозируемого спроса
var demandRecommendations = map[string]string{
	"high":   "More drivers needed. Consider incentivizing driver participation.",
	"medium": "Moderate activity expected. Current driver count should suffice.",
	"low":    "Low demand period. Good time for driver breaks or maintenance.",
}

// DemandUseCase обрабатывает бизнес-логику анализа исторического спроса
type DemandUseCase struct {
	activityRepo repository.ActivityRepository
	cacheRepo    repository.CacheRepository
	classifier   *geo.Classifier
	cfg          *config.Config
	logger       *zap.Logger
}

// NewDemandUseCase создает новый экземпляр DemandUseCase
func NewDemandUseCase(
	activityRepo repository.ActivityRepository,
	cacheRepo repository.CacheRepository,
	classifier *geo.Classifier,
	cfg *config.Config,
	logger *zap.Logger,
) *DemandUseCase {
	return &DemandUseCase{
		activityRepo: activityRepo,
		cacheRepo:    cacheRepo,
		classifier:   classifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// GetDemandPatterns возвращает паттерны спроса за daysBack дней,
// используя кеш когда возможно
func (uc *DemandUseCase) GetDemandPatterns(ctx context.Context, daysBack int) (*domain.DemandPatterns, error) {
	if daysBack <= 0 {
		daysBack = uc.cfg.Analytics.DemandDaysBack
	}

	cached, err := uc.cacheRepo.GetDemandPatterns(ctx, daysBack)
	if err == nil && cached != nil {
		uc.logger.Debug("Demand patterns fetched from cache", zap.Int("days_back", daysBack))
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get demand patterns from cache", zap.Error(err))
	}

	patterns := uc.computeDemandPatterns(ctx, daysBack)

	if err := uc.cacheRepo.SetDemandPatterns(ctx, daysBack, patterns, uc.cfg.Cache.DemandTTL); err != nil {
		uc.logger.Warn("Failed to cache demand patterns", zap.Error(err))
	}

	return patterns, nil
}

// RefreshDemandPatterns принудительно пересчитывает паттерны и обновляет кеш
func (uc *DemandUseCase) RefreshDemandPatterns(ctx context.Context, daysBack int) (*domain.DemandPatterns, error) {
	if daysBack <= 0 {
		daysBack = uc.cfg.Analytics.DemandDaysBack
	}

	patterns := uc.computeDemandPatterns(ctx, daysBack)

	if err := uc.cacheRepo.SetDemandPatterns(ctx, daysBack, patterns, uc.cfg.Cache.DemandTTL); err != nil {
		uc.logger.Warn("Failed to cache refreshed demand patterns", zap.Error(err))
	}

	return patterns, nil
}

func (uc *DemandUseCase) computeDemandPatterns(ctx context.Context, daysBack int) *domain.DemandPatterns {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -daysBack)

	patterns := &domain.DemandPatterns{
		AnalysisPeriod: domain.AnalysisPeriod{Start: start, End: end, Days: daysBack},
		Hourly:         uc.hourlyDemand(ctx, start, end),
		Daily:          uc.dailyDemand(ctx, start, end),
		Location:       uc.locationDemand(ctx, start, end),
		Prediction:     uc.prediction(ctx, end),
	}
	patterns.Insights = generateInsights(patterns.Hourly, patterns.Daily, patterns.Location)

	return patterns
}

// hourlyDemand группирует пассажирские сессии по часам суток.
// Распределение всегда содержит все 24 часа, при равенстве счетчиков
// побеждает меньший час.
func (uc *DemandUseCase) hourlyDemand(ctx context.Context, start, end time.Time) domain.HourlyDemand {
	times, err := uc.activityRepo.PassengerSessionTimes(ctx, start, end)
	if err != nil {
		uc.logger.Error("Failed to analyze hourly demand", zap.Error(err))
		return domain.HourlyDemand{Error: err.Error()}
	}

	distribution := make(map[int]int, 24)
	for hour := 0; hour < 24; hour++ {
		distribution[hour] = 0
	}
	total := 0
	for _, t := range times {
		distribution[t.UTC().Hour()]++
		total++
	}

	peakHour, lowestHour := 0, 0
	for hour := 1; hour < 24; hour++ {
		if distribution[hour] > distribution[peakHour] {
			peakHour = hour
		}
		if distribution[hour] < distribution[lowestHour] {
			lowestHour = hour
		}
	}

	return domain.HourlyDemand{
		Distribution:  distribution,
		PeakHour:      peakHour,
		LowestHour:    lowestHour,
		AverageHourly: float64(total) / 24,
	}
}

// dailyDemand группирует пассажирские сессии по дням недели.
// Присутствуют только дни с данными.
func (uc *DemandUseCase) dailyDemand(ctx context.Context, start, end time.Time) domain.DailyDemand {
	times, err := uc.activityRepo.PassengerSessionTimes(ctx, start, end)
	if err != nil {
		uc.logger.Error("Failed to analyze daily demand", zap.Error(err))
		return domain.DailyDemand{Error: err.Error()}
	}

	distribution := make(map[string]int)
	for _, t := range times {
		distribution[t.UTC().Weekday().String()]++
	}

	result := domain.DailyDemand{Distribution: distribution}
	if len(distribution) == 0 {
		return result
	}

	busiest, quietest := -1, -1
	for _, day := range weekdayOrder {
		count, ok := distribution[day.String()]
		if !ok {
			continue
		}
		if busiest < 0 || count > distribution[weekdayOrder[busiest].String()] {
			busiest = int(day)
		}
		if quietest < 0 || count < distribution[weekdayOrder[quietest].String()] {
			quietest = int(day)
		}
	}

	result.BusiestDay = time.Weekday(busiest).String()
	result.QuietestDay = time.Weekday(quietest).String()
	return result
}

// locationDemand группирует пассажирские измерения по ориентирам и зонам,
// распределения отсортированы по убыванию
func (uc *DemandUseCase) locationDemand(ctx context.Context, start, end time.Time) domain.LocationDemand {
	samples, err := uc.activityRepo.PassengerSamplesBetween(ctx, start, end)
	if err != nil {
		uc.logger.Error("Failed to analyze location demand", zap.Error(err))
		return domain.LocationDemand{Error: err.Error()}
	}

	byLandmark := make(map[string]int)
	byZone := make(map[domain.Zone]int)
	for _, s := range samples {
		byLandmark[uc.classifier.NearestLandmark(s.Point)]++
		byZone[uc.classifier.ResolveZone(s.Point)]++
	}

	locations := sortedLocationCounts(byLandmark)

	zones := make([]domain.ZoneCount, 0, len(byZone))
	for zone, count := range byZone {
		zones = append(zones, domain.ZoneCount{Zone: zone, Count: count})
	}
	sort.Slice(zones, func(i, j int) bool {
		if zones[i].Count != zones[j].Count {
			return zones[i].Count > zones[j].Count
		}
		return zones[i].Zone < zones[j].Zone
	})

	hotspots := locations
	if len(hotspots) > maxDemandHotspots {
		hotspots = hotspots[:maxDemandHotspots]
	}

	return domain.LocationDemand{
		LocationDistribution: locations,
		ZoneDistribution:     zones,
		Hotspots:             hotspots,
	}
}

// prediction — наивный прогноз по историческому количеству пассажирских
// сессий в текущий час суток
func (uc *DemandUseCase) prediction(ctx context.Context, now time.Time) domain.DemandPrediction {
	hour := now.Hour()

	historical, err := uc.activityRepo.PassengerCountAtHour(ctx, hour)
	if err != nil {
		uc.logger.Error("Failed to generate demand prediction", zap.Error(err))
		return domain.DemandPrediction{Error: err.Error()}
	}

	predicted := "low"
	switch {
	case historical > 20:
		predicted = "high"
	case historical > 10:
		predicted = "medium"
	}

	return domain.DemandPrediction{
		NextHourDemand: predicted,
		Confidence:     "low",
		BasedOn:        fmt.Sprintf("Historical data for %d:00 on %ss", hour, now.Weekday()),
		Recommendation: demandRecommendations[predicted],
	}
}

func generateInsights(hourly domain.HourlyDemand, daily domain.DailyDemand, location domain.LocationDemand) []string {
	var insights []string

	if hourly.Error == "" {
		insights = append(insights, fmt.Sprintf(
			"Peak demand occurs at %02d:00. Consider increasing driver availability during this time.",
			hourly.PeakHour,
		))
	}
	if daily.BusiestDay != "" {
		insights = append(insights, fmt.Sprintf(
			"%s shows highest demand. Plan driver schedules accordingly.",
			daily.BusiestDay,
		))
	}
	if len(location.Hotspots) > 0 {
		insights = append(insights, fmt.Sprintf(
			"'%s' is the most popular pickup location. Consider strategic driver positioning.",
			location.Hotspots[0].Location,
		))
	}

	return insights
}

func sortedLocationCounts(counts map[string]int) []domain.LocationCount {
	result := make([]domain.LocationCount, 0, len(counts))
	for location, count := range counts {
		result = append(result, domain.LocationCount{Location: location, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Location < result[j].Location
	})
	return result
}
