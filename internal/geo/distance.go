package geo

import (
	"math"

	"github.com/campus-mobility-service/internal/domain"
)

const earthRadiusKm = 6371.0

// Distance вычисляет расстояние между двумя точками по формуле
// гаверсинусов, в километрах
func Distance(a, b domain.Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLng := (b.Lng - a.Lng) * math.Pi / 180.0

	lat1Rad := a.Lat * math.Pi / 180.0
	lat2Rad := b.Lat * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// DistanceMeters вычисляет расстояние между двумя точками в метрах
func DistanceMeters(a, b domain.Point) float64 {
	return Distance(a, b) * 1000
}

// ValidCoordinates проверяет диапазон координат
func ValidCoordinates(p domain.Point) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
