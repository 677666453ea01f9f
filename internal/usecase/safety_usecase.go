package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/campus-mobility-service/internal/config"
	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/domain/repository"
	"github.com/campus-mobility-service/internal/geo"
	"go.uber.org/zap"
)

// Штрафы к базовой оценке безопасности
const (
	safetyBaseScore   = 100.0
	incidentPenalty   = 5.0
	unresolvedPenalty = 10.0
)

// generalSafetyRecommendations добавляются к каждому отчету
var generalSafetyRecommendations = []string{
	"Ensure emergency contacts are updated and responsive.",
	"Regular safety awareness campaigns for app users.",
	"Consider installing emergency beacons at high-incident locations.",
}

// SafetyUseCase обрабатывает бизнес-логику аналитики безопасности
type SafetyUseCase struct {
	activityRepo repository.ActivityRepository
	classifier   *geo.Classifier
	cfg          *config.Config
	logger       *zap.Logger
}

// NewSafetyUseCase создает новый экземпляр SafetyUseCase
func NewSafetyUseCase(
	activityRepo repository.ActivityRepository,
	classifier *geo.Classifier,
	cfg *config.Config,
	logger *zap.Logger,
) *SafetyUseCase {
	return &SafetyUseCase{
		activityRepo: activityRepo,
		classifier:   classifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// GetSafetyAnalytics возвращает аналитику безопасности за скользящее окно
func (uc *SafetyUseCase) GetSafetyAnalytics(ctx context.Context) (*domain.SafetyReport, error) {
	days := uc.cfg.Analytics.SafetyDaysBack
	since := time.Now().UTC().AddDate(0, 0, -days)

	alerts, err := uc.activityRepo.AlertsSince(ctx, since)
	if err != nil {
		uc.logger.Error("Failed to load emergency alerts", zap.Error(err))
		return nil, fmt.Errorf("load emergency alerts: %w", err)
	}

	patterns := uc.incidentPatterns(alerts)

	return &domain.SafetyReport{
		PeriodDays:     days,
		TotalIncidents: len(alerts),
		Patterns:       patterns,
		Metrics: domain.SafetyMetrics{
			SafetyScore:          safetyScore(alerts),
			ResponseRate:         responseRate(alerts),
			AvgResolutionMinutes: avgResolutionMinutes(alerts),
		},
		Recommendations: safetyRecommendations(patterns),
	}, nil
}

func (uc *SafetyUseCase) incidentPatterns(alerts []domain.EmergencyAlert) domain.IncidentPatterns {
	patterns := domain.IncidentPatterns{
		ByType:     make(map[string]int),
		ByLocation: make(map[string]int),
		ByHour:     make(map[int]int),
	}

	for _, a := range alerts {
		patterns.ByType[a.AlertType]++
		patterns.ByLocation[uc.classifier.NearestLandmark(a.Point)]++
		patterns.ByHour[a.CreatedAt.UTC().Hour()]++
	}

	return patterns
}

// safetyScore — базовые 100 минус 5 за каждый инцидент и еще 10 за
// каждый неразрешенный, не ниже нуля
func safetyScore(alerts []domain.EmergencyAlert) float64 {
	unresolved := 0
	for _, a := range alerts {
		if !a.IsResolved {
			unresolved++
		}
	}

	score := safetyBaseScore -
		float64(len(alerts))*incidentPenalty -
		float64(unresolved)*unresolvedPenalty
	if score < 0 {
		score = 0
	}
	return round1(score)
}

// responseRate — доля инцидентов с уведомленными службами; без
// инцидентов ставка равна 100
func responseRate(alerts []domain.EmergencyAlert) float64 {
	if len(alerts) == 0 {
		return 100.0
	}

	notified := 0
	for _, a := range alerts {
		if a.AuthoritiesNotified {
			notified++
		}
	}
	return round1(float64(notified) / float64(len(alerts)) * 100)
}

// avgResolutionMinutes возвращает nil, если ни один инцидент не разрешен
func avgResolutionMinutes(alerts []domain.EmergencyAlert) *float64 {
	total := 0.0
	resolved := 0
	for _, a := range alerts {
		if a.IsResolved && a.ResolvedAt != nil {
			total += a.ResolvedAt.Sub(a.CreatedAt).Minutes()
			resolved++
		}
	}

	if resolved == 0 {
		return nil
	}

	avg := round1(total / float64(resolved))
	return &avg
}

func safetyRecommendations(patterns domain.IncidentPatterns) []string {
	var recommendations []string

	if location := maxCountKey(patterns.ByLocation); location != "" {
		recommendations = append(recommendations, fmt.Sprintf(
			"Increase security presence at %s - highest incident location.", location,
		))
	}
	if len(patterns.ByHour) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Enhanced monitoring needed around %02d:00 - peak incident time.", maxCountHour(patterns.ByHour),
		))
	}

	return append(recommendations, generalSafetyRecommendations...)
}

// maxCountHour возвращает час с максимальным счетчиком, при равенстве
// побеждает меньший час
func maxCountHour(counts map[int]int) int {
	best, bestCount := 0, -1
	for hour, count := range counts {
		if count > bestCount || (count == bestCount && hour < best) {
			best = hour
			bestCount = count
		}
	}
	return best
}
