package geo

import "github.com/campus-mobility-service/internal/domain"

// zoneRect — прямоугольная зона кампуса по независимым границам координат
type zoneRect struct {
	zone                   domain.Zone
	minLat, maxLat         float64
	minLng, maxLng         float64
}

// campusZones — зоны в фиксированном порядке проверки.
// Прямоугольники не обязаны быть дизъюнктными: пересечения разрешаются
// первым совпадением в этом порядке.
var campusZones = []zoneRect{
	{domain.ZoneAcademic, 7.5200, 7.5260, 4.5180, 4.5230},    // центр-юг
	{domain.ZoneResidential, 7.5260, 7.5320, 4.5120, 4.5180}, // север
	{domain.ZoneMedical, 7.5320, 7.5380, 4.5100, 4.5150},     // северо-восток
	{domain.ZoneSports, 7.5180, 7.5220, 4.5220, 4.5280},      // юг
}

// ResolveZone возвращает зону кампуса для точки: первая подошедшая
// в фиксированном порядке, иначе общая зона
func (c *Classifier) ResolveZone(p domain.Point) domain.Zone {
	for _, z := range campusZones {
		if p.Lat >= z.minLat && p.Lat <= z.maxLat && p.Lng >= z.minLng && p.Lng <= z.maxLng {
			return z.zone
		}
	}
	return domain.ZoneGeneral
}
