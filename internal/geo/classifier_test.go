package geo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-mobility-service/internal/domain"
	"github.com/campus-mobility-service/internal/geo"
)

var (
	campusCenter = domain.Point{Lat: 7.5227, Lng: 4.5198}
	campusRadius = 5.0
)

func newTestClassifier() *geo.Classifier {
	return geo.NewClassifier(geo.DefaultCatalog(), campusCenter, campusRadius)
}

func TestDistance(t *testing.T) {
	t.Run("symmetric", func(t *testing.T) {
		a := domain.Point{Lat: 7.5227, Lng: 4.5198}
		b := domain.Point{Lat: 7.5345, Lng: 4.5123}

		assert.InDelta(t, geo.Distance(a, b), geo.Distance(b, a), 1e-12)
	})

	t.Run("zero for identical points", func(t *testing.T) {
		p := domain.Point{Lat: 7.5227, Lng: 4.5198}

		assert.Zero(t, geo.Distance(p, p))
	})

	t.Run("known distance magnitude", func(t *testing.T) {
		// Main Gate to Teaching Hospital is roughly 1.5 km
		a := domain.Point{Lat: 7.5227, Lng: 4.5198}
		b := domain.Point{Lat: 7.5345, Lng: 4.5123}

		d := geo.Distance(a, b)
		assert.Greater(t, d, 1.0)
		assert.Less(t, d, 2.0)
	})

	t.Run("meters conversion", func(t *testing.T) {
		a := domain.Point{Lat: 7.5227, Lng: 4.5198}
		b := domain.Point{Lat: 7.5245, Lng: 4.5203}

		assert.InDelta(t, geo.Distance(a, b)*1000, geo.DistanceMeters(a, b), 1e-9)
	})
}

func TestClassifier_WithinCampus(t *testing.T) {
	c := newTestClassifier()

	t.Run("far outside", func(t *testing.T) {
		assert.False(t, c.WithinCampus(domain.Point{Lat: 0, Lng: 0}))
	})

	t.Run("campus center is inside", func(t *testing.T) {
		assert.True(t, c.WithinCampus(campusCenter))
	})

	t.Run("inside radius but outside polygon", func(t *testing.T) {
		// ~2 km east of center: passes the radius pre-filter, fails the polygon test
		assert.False(t, c.WithinCampus(domain.Point{Lat: 7.5227, Lng: 4.5400}))
	})
}

func TestClassifier_NearestLandmark(t *testing.T) {
	c := newTestClassifier()

	t.Run("exact landmark coordinates", func(t *testing.T) {
		label := c.NearestLandmark(domain.Point{Lat: 7.5227, Lng: 4.5198})

		assert.Equal(t, "At Main Gate", label)
	})

	t.Run("within 200 meters", func(t *testing.T) {
		// ~100 m north of Main Gate, but closer to Banking Complex cluster
		label := c.NearestLandmark(domain.Point{Lat: 7.5236, Lng: 4.5198})

		assert.True(t, strings.HasPrefix(label, "Near ") || strings.HasPrefix(label, "At "))
	})

	t.Run("no landmark in range", func(t *testing.T) {
		label := c.NearestLandmark(domain.Point{Lat: 8.0, Lng: 5.0})

		assert.Equal(t, "On Campus (Location Unknown)", label)
	})
}

func TestClassifier_LandmarksWithin(t *testing.T) {
	c := newTestClassifier()

	t.Run("sorted ascending by distance", func(t *testing.T) {
		nearby := c.LandmarksWithin(campusCenter, 500)

		assert.NotEmpty(t, nearby)
		for i := 1; i < len(nearby); i++ {
			assert.LessOrEqual(t, nearby[i-1].DistanceMeters, nearby[i].DistanceMeters)
		}
	})

	t.Run("zero radius matches only coincident landmarks", func(t *testing.T) {
		nearby := c.LandmarksWithin(campusCenter, 0)

		assert.Len(t, nearby, 1)
		assert.Equal(t, "main_gate", nearby[0].ID)
	})

	t.Run("empty far from campus", func(t *testing.T) {
		assert.Empty(t, c.LandmarksWithin(domain.Point{Lat: 0, Lng: 0}, 1000))
	})
}

func TestClassifier_ResolveZone(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name  string
		point domain.Point
		zone  domain.Zone
	}{
		{"academic zone", domain.Point{Lat: 7.5230, Lng: 4.5200}, domain.ZoneAcademic},
		{"residential zone", domain.Point{Lat: 7.5280, Lng: 4.5150}, domain.ZoneResidential},
		{"medical zone", domain.Point{Lat: 7.5345, Lng: 4.5123}, domain.ZoneMedical},
		{"sports zone", domain.Point{Lat: 7.5198, Lng: 4.5234}, domain.ZoneSports},
		{"fallback far away", domain.Point{Lat: 0, Lng: 0}, domain.ZoneGeneral},
		{"fallback inside campus", domain.Point{Lat: 7.5160, Lng: 4.5150}, domain.ZoneGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.zone, c.ResolveZone(tt.point))
		})
	}
}

func TestClassifier_ValidateCoordinates(t *testing.T) {
	c := newTestClassifier()

	t.Run("both coordinates out of range", func(t *testing.T) {
		result := c.ValidateCoordinates(domain.Point{Lat: 91, Lng: 181})

		assert.False(t, result.Valid)
		assert.Len(t, result.Errors, 2)
		// Range violation halts classification
		assert.False(t, result.WithinCampus)
		assert.Nil(t, result.DistanceFromCenterKm)
		assert.Empty(t, result.NearestLandmark)
	})

	t.Run("valid point inside campus", func(t *testing.T) {
		result := c.ValidateCoordinates(campusCenter)

		assert.True(t, result.Valid)
		assert.True(t, result.WithinCampus)
		assert.NotNil(t, result.DistanceFromCenterKm)
		assert.InDelta(t, 0, *result.DistanceFromCenterKm, 1e-9)
		assert.Equal(t, "At Main Gate", result.NearestLandmark)
		assert.Equal(t, domain.ZoneAcademic, result.Zone)
		assert.Empty(t, result.Errors)
	})

	t.Run("valid range but outside campus", func(t *testing.T) {
		result := c.ValidateCoordinates(domain.Point{Lat: 0, Lng: 0})

		assert.False(t, result.Valid)
		assert.False(t, result.WithinCampus)
		assert.NotNil(t, result.DistanceFromCenterKm)
		assert.NotEmpty(t, result.Errors)
	})
}
