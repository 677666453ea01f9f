package cluster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campus-mobility-service/internal/cluster"
	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/geo"
)

func sampleAt(lat, lng float64, role domain.Role, ts time.Time) domain.RoleSample {
	return domain.RoleSample{
		Sample: domain.LocationSample{
			Point:     domain.Point{Lat: lat, Lng: lng},
			Timestamp: ts,
		},
		Role: role,
	}
}

func TestBuildClusters(t *testing.T) {
	now := time.Now()

	t.Run("two samples 50m apart form one cluster", func(t *testing.T) {
		// ~50 m apart in latitude (1 degree latitude ~ 111 km)
		samples := []domain.RoleSample{
			sampleAt(7.5227, 4.5198, domain.RoleDriver, now),
			sampleAt(7.52315, 4.5198, domain.RolePassenger, now.Add(time.Minute)),
		}

		clusters := cluster.BuildClusters(samples, 100)

		assert.Len(t, clusters, 1)
		assert.Equal(t, 2, clusters[0].MemberCount)
		assert.Equal(t, domain.Point{Lat: 7.5227, Lng: 4.5198}, clusters[0].Center)
		assert.Equal(t, now.Add(time.Minute), clusters[0].LastUpdated)
		assert.Greater(t, clusters[0].Density, 0.0)
	})

	t.Run("two samples 500m apart never cluster", func(t *testing.T) {
		samples := []domain.RoleSample{
			sampleAt(7.5227, 4.5198, domain.RoleDriver, now),
			sampleAt(7.5272, 4.5198, domain.RolePassenger, now),
		}

		clusters := cluster.BuildClusters(samples, 100)

		// Singleton clusters are filtered out
		assert.Empty(t, clusters)
	})

	t.Run("greedy assignment is input-order dependent", func(t *testing.T) {
		// Three collinear samples ~80 m apart: the first seeds the cluster,
		// absorbs the middle one, the last stays a discarded singleton.
		samples := []domain.RoleSample{
			sampleAt(7.5227, 4.5198, domain.RoleDriver, now),
			sampleAt(7.52342, 4.5198, domain.RoleDriver, now),
			sampleAt(7.52414, 4.5198, domain.RoleDriver, now),
		}

		clusters := cluster.BuildClusters(samples, 100)

		assert.Len(t, clusters, 1)
		assert.Equal(t, 2, clusters[0].MemberCount)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, cluster.BuildClusters(nil, 100))
	})
}

func TestActivityLevel(t *testing.T) {
	assert.Equal(t, "high", cluster.ActivityLevel(10))
	assert.Equal(t, "medium", cluster.ActivityLevel(5))
	assert.Equal(t, "low", cluster.ActivityLevel(1))
	assert.Equal(t, "none", cluster.ActivityLevel(0))
}

func TestHotspots(t *testing.T) {
	c := geo.NewClassifier(geo.DefaultCatalog(), domain.Point{Lat: 7.5227, Lng: 4.5198}, 5.0)
	now := time.Now()

	t.Run("landmark below threshold is dropped", func(t *testing.T) {
		samples := []domain.RoleSample{
			sampleAt(7.5227, 4.5198, domain.RoleDriver, now),
			sampleAt(7.5227, 4.5198, domain.RolePassenger, now),
		}

		assert.Empty(t, cluster.Hotspots(samples, c))
	})

	t.Run("role split and ratio", func(t *testing.T) {
		samples := []domain.RoleSample{
			sampleAt(7.5227, 4.5198, domain.RoleDriver, now),
			sampleAt(7.5227, 4.5198, domain.RoleDriver, now),
			sampleAt(7.5227, 4.5198, domain.RolePassenger, now),
		}

		hotspots := cluster.Hotspots(samples, c)

		assert.Len(t, hotspots, 1)
		assert.Equal(t, "At Main Gate", hotspots[0].Landmark)
		assert.Equal(t, 3, hotspots[0].TotalActivity)
		assert.Equal(t, 2, hotspots[0].Drivers)
		assert.Equal(t, 1, hotspots[0].Passengers)
		assert.InDelta(t, 2.0, hotspots[0].Ratio, 1e-9)
		assert.Equal(t, "low", hotspots[0].ActivityLevel)
	})

	t.Run("ratio denominator floored at one", func(t *testing.T) {
		samples := []domain.RoleSample{
			sampleAt(7.5227, 4.5198, domain.RoleDriver, now),
			sampleAt(7.5227, 4.5198, domain.RoleDriver, now),
			sampleAt(7.5227, 4.5198, domain.RoleDriver, now),
		}

		hotspots := cluster.Hotspots(samples, c)

		assert.Len(t, hotspots, 1)
		assert.InDelta(t, 3.0, hotspots[0].Ratio, 1e-9)
	})

	t.Run("sorted by total activity descending", func(t *testing.T) {
		samples := []domain.RoleSample{
			// 4 at the Teaching Hospital
			sampleAt(7.5345, 4.5123, domain.RolePassenger, now),
			sampleAt(7.5345, 4.5123, domain.RolePassenger, now),
			sampleAt(7.5345, 4.5123, domain.RoleDriver, now),
			sampleAt(7.5345, 4.5123, domain.RoleDriver, now),
			// 3 at the Main Gate
			sampleAt(7.5227, 4.5198, domain.RoleDriver, now),
			sampleAt(7.5227, 4.5198, domain.RolePassenger, now),
			sampleAt(7.5227, 4.5198, domain.RolePassenger, now),
		}

		hotspots := cluster.Hotspots(samples, c)

		assert.Len(t, hotspots, 2)
		assert.Equal(t, "At OAU Teaching Hospital (OAUTHC)", hotspots[0].Landmark)
		assert.Equal(t, 4, hotspots[0].TotalActivity)
		assert.Equal(t, 3, hotspots[1].TotalActivity)
	})
}
