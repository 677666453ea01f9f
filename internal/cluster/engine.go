// Package cluster группирует сырые измерения местоположения
// в пространственные кластеры и хотспоты по ориентирам.
package cluster

import (
	"math"
	"sort"

	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/geo"
)

// DefaultClusterRadiusMeters — радиус кластера по умолчанию
const DefaultClusterRadiusMeters = 100.0

// MinClusterMembers — минимальный размер кластера; меньшие отбрасываются
const MinClusterMembers = 2

// HotspotThreshold — минимальная активность ориентира для хотспота
const HotspotThreshold = 3

// MaxHotspots — размер топа хотспотов
const MaxHotspots = 10

// BuildClusters выполняет жадную однопроходную кластеризацию измерений.
// Каждое необработанное измерение затравливает кластер фиксированного
// радиуса и поглощает все последующие необработанные измерения в радиусе.
// Разбиение O(n²), зависит от порядка входа и не оптимально — это
// намеренное поведение, а не дефект. Кластеры меньше MinClusterMembers
// отбрасываются.
func BuildClusters(samples []domain.RoleSample, radiusMeters float64) []domain.ClusterSummary {
	if radiusMeters <= 0 {
		radiusMeters = DefaultClusterRadiusMeters
	}

	var clusters []domain.ClusterSummary
	processed := make([]bool, len(samples))

	for i := range samples {
		if processed[i] {
			continue
		}

		center := samples[i].Sample.Point
		members := 1
		lastUpdated := samples[i].Sample.Timestamp
		processed[i] = true

		for j := range samples {
			if processed[j] {
				continue
			}
			if geo.DistanceMeters(samples[j].Sample.Point, center) <= radiusMeters {
				members++
				processed[j] = true
				if samples[j].Sample.Timestamp.After(lastUpdated) {
					lastUpdated = samples[j].Sample.Timestamp
				}
			}
		}

		if members >= MinClusterMembers {
			clusters = append(clusters, domain.ClusterSummary{
				Center:       center,
				RadiusMeters: radiusMeters,
				MemberCount:  members,
				Density:      density(members, radiusMeters),
				LastUpdated:  lastUpdated,
			})
		}
	}

	return clusters
}

// density — участники на квадратный метр площади кластера
func density(members int, radiusMeters float64) float64 {
	area := math.Pi * radiusMeters * radiusMeters
	if area <= 0 {
		return 0
	}
	return float64(members) / area
}

// ActivityLevel возвращает качественный уровень активности по числу
// пользователей: high (>=10), medium (>=5), low (>=1), none
func ActivityLevel(count int) string {
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

// Hotspots группирует измерения по метке ближайшего ориентира и
// возвращает до MaxHotspots ориентиров с активностью не ниже
// HotspotThreshold, по убыванию активности. Не зависит от
// кластеризации: группировка идет только по ориентирам.
func Hotspots(samples []domain.RoleSample, classifier *geo.Classifier) []domain.Hotspot {
	type activity struct {
		drivers    int
		passengers int
		total      int
	}

	byLandmark := make(map[string]*activity)
	for _, rs := range samples {
		label := classifier.NearestLandmark(rs.Sample.Point)
		a, ok := byLandmark[label]
		if !ok {
			a = &activity{}
			byLandmark[label] = a
		}
		a.total++
		if rs.Role == domain.RoleDriver {
			a.drivers++
		} else {
			a.passengers++
		}
	}

	var hotspots []domain.Hotspot
	for label, a := range byLandmark {
		if a.total < HotspotThreshold {
			continue
		}
		hotspots = append(hotspots, domain.Hotspot{
			Landmark:      label,
			TotalActivity: a.total,
			Drivers:       a.drivers,
			Passengers:    a.passengers,
			Ratio:         float64(a.drivers) / math.Max(float64(a.passengers), 1),
			ActivityLevel: ActivityLevel(a.total),
		})
	}

	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].TotalActivity != hotspots[j].TotalActivity {
			return hotspots[i].TotalActivity > hotspots[j].TotalActivity
		}
		return hotspots[i].Landmark < hotspots[j].Landmark
	})
	if len(hotspots) > MaxHotspots {
		hotspots = hotspots[:MaxHotspots]
	}
	return hotspots
}
