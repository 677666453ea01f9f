package geo

import (
	"fmt"
	"math"
	"sort"

	"github.com/campus-mobility-service/internal/domain"
)

// DefaultLandmarkRangeKm — радиус поиска ближайшего ориентира по умолчанию
const DefaultLandmarkRangeKm = 1.0

// UnknownLocationLabel — метка для точек без ориентира в радиусе поиска
const UnknownLocationLabel = "On Campus (Location Unknown)"

// campusBoundary — замкнутый контур границы кампуса.
// Координаты приблизительные, порядок вершин — обход контура.
var campusBoundary = []domain.Point{
	{Lat: 7.5150, Lng: 4.5100}, // юго-западный угол
	{Lat: 7.5300, Lng: 4.5050}, // северо-западный угол
	{Lat: 7.5380, Lng: 4.5200}, // северо-восточный угол
	{Lat: 7.5350, Lng: 4.5300}, // восточная граница
	{Lat: 7.5250, Lng: 4.5350}, // юго-восточный угол
	{Lat: 7.5100, Lng: 4.5250}, // южная граница
	{Lat: 7.5150, Lng: 4.5100}, // замыкание контура
}

// Classifier — чистый классификатор координат: геозона кампуса,
// ближайшие ориентиры, зоны. Все методы — чистые функции от аргументов
// и неизменяемого каталога, безопасны для любого числа горутин.
type Classifier struct {
	catalog  *Catalog
	center   domain.Point
	radiusKm float64
	boundary []domain.Point
}

// NewClassifier создает классификатор для кампуса с заданным центром
// и радиусом предварительной проверки
func NewClassifier(catalog *Catalog, center domain.Point, radiusKm float64) *Classifier {
	return &Classifier{
		catalog:  catalog,
		center:   center,
		radiusKm: radiusKm,
		boundary: campusBoundary,
	}
}

// Catalog возвращает каталог ориентиров классификатора
func (c *Classifier) Catalog() *Catalog {
	return c.catalog
}

// Center возвращает центр кампуса
func (c *Classifier) Center() domain.Point {
	return c.center
}

// WithinCampus проверяет принадлежность точки кампусу: сначала грубая
// проверка расстояния до центра, затем точная проверка полигоном.
// Обе проверки должны пройти.
func (c *Classifier) WithinCampus(p domain.Point) bool {
	if Distance(p, c.center) > c.radiusKm {
		return false
	}
	return pointInPolygon(p, c.boundary)
}

// pointInPolygon — алгоритм трассировки луча (crossing number).
// Поведение для точек ровно на ребре определяется арифметикой
// пересечений и не специфицировано.
func pointInPolygon(p domain.Point, polygon []domain.Point) bool {
	x, y := p.Lng, p.Lat
	n := len(polygon)
	inside := false

	p1x, p1y := polygon[0].Lng, polygon[0].Lat
	for i := 1; i <= n; i++ {
		p2x, p2y := polygon[i%n].Lng, polygon[i%n].Lat
		if y > math.Min(p1y, p2y) && y <= math.Max(p1y, p2y) && x <= math.Max(p1x, p2x) {
			var xIntersect float64
			if p1y != p2y {
				xIntersect = (y-p1y)*(p2x-p1x)/(p2y-p1y) + p1x
			}
			if p1x == p2x || x <= xIntersect {
				inside = !inside
			}
		}
		p1x, p1y = p2x, p2y
	}

	return inside
}

// NearestLandmark возвращает текстовую метку ближайшего ориентира
// в радиусе по умолчанию (1 км)
func (c *Classifier) NearestLandmark(p domain.Point) string {
	return c.NearestLandmarkWithin(p, DefaultLandmarkRangeKm)
}

// NearestLandmarkWithin возвращает текстовую метку ближайшего ориентира
// в радиусе maxDistanceKm: "At {name}" (<50м), "Near {name}" (<200м),
// иначе "Close to {name} ({m}m)". Без ориентира в радиусе — метка
// неизвестной локации.
func (c *Classifier) NearestLandmarkWithin(p domain.Point, maxDistanceKm float64) string {
	minDistance := math.Inf(1)
	var nearest *domain.Landmark

	for i := range c.catalog.landmarks {
		lm := &c.catalog.landmarks[i]
		d := Distance(p, lm.Point)
		if d < minDistance && d <= maxDistanceKm {
			minDistance = d
			nearest = lm
		}
	}

	if nearest == nil {
		return UnknownLocationLabel
	}

	meters := minDistance * 1000
	switch {
	case meters < 50:
		return fmt.Sprintf("At %s", nearest.Name)
	case meters < 200:
		return fmt.Sprintf("Near %s", nearest.Name)
	default:
		return fmt.Sprintf("Close to %s (%dm)", nearest.Name, int(meters))
	}
}

// LandmarksWithin возвращает все ориентиры в радиусе radiusMeters,
// по возрастанию расстояния
func (c *Classifier) LandmarksWithin(p domain.Point, radiusMeters float64) []domain.NearbyLandmark {
	var nearby []domain.NearbyLandmark

	for _, lm := range c.catalog.landmarks {
		meters := DistanceMeters(p, lm.Point)
		if meters <= radiusMeters {
			nearby = append(nearby, domain.NearbyLandmark{
				Landmark:       lm,
				DistanceMeters: math.Round(meters),
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})
	return nearby
}

// ValidateCoordinates выполняет полную проверку координат: сначала
// диапазон (нарушение останавливает классификацию), затем принадлежность
// кампусу, расстояние до центра, ближайший ориентир и зона.
func (c *Classifier) ValidateCoordinates(p domain.Point) *domain.CoordinateValidation {
	result := &domain.CoordinateValidation{}

	if p.Lat < -90 || p.Lat > 90 {
		result.Errors = append(result.Errors, "Invalid latitude: must be between -90 and 90")
	}
	if p.Lng < -180 || p.Lng > 180 {
		result.Errors = append(result.Errors, "Invalid longitude: must be between -180 and 180")
	}
	if len(result.Errors) > 0 {
		return result
	}

	result.WithinCampus = c.WithinCampus(p)
	distance := Distance(p, c.center)
	result.DistanceFromCenterKm = &distance

	if result.WithinCampus {
		result.Valid = true
		result.NearestLandmark = c.NearestLandmark(p)
		result.Zone = c.ResolveZone(p)
	} else {
		result.Errors = append(result.Errors, "Location is outside campus boundaries")
	}

	return result
}
