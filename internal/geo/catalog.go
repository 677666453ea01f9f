package geo

import "github.com/campus-mobility-service/internal/domain"

// Catalog — неизменяемый каталог ориентиров кампуса.
// Загружается один раз при старте процесса и разделяется всеми
// компонентами без синхронизации.
type Catalog struct {
	landmarks []domain.Landmark
	byID      map[string]domain.Landmark
}

// NewCatalog создает каталог из списка ориентиров
func NewCatalog(landmarks []domain.Landmark) *Catalog {
	byID := make(map[string]domain.Landmark, len(landmarks))
	for _, lm := range landmarks {
		byID[lm.ID] = lm
	}
	return &Catalog{landmarks: landmarks, byID: byID}
}

// All возвращает все ориентиры каталога
func (c *Catalog) All() []domain.Landmark {
	return c.landmarks
}

// ByID возвращает ориентир по идентификатору
func (c *Catalog) ByID(id string) (domain.Landmark, bool) {
	lm, ok := c.byID[id]
	return lm, ok
}

// ByCategory возвращает все ориентиры указанной категории
func (c *Catalog) ByCategory(cat domain.LandmarkCategory) []domain.Landmark {
	var result []domain.Landmark
	for _, lm := range c.landmarks {
		if lm.Category == cat {
			result = append(result, lm)
		}
	}
	return result
}

// DefaultCatalog возвращает вшитый каталог ориентиров кампуса ОАУ
func DefaultCatalog() *Catalog {
	return NewCatalog(campusLandmarks)
}

// campusLandmarks — ориентиры кампуса с точными координатами
var campusLandmarks = []domain.Landmark{
	// Главные здания
	{ID: "main_gate", Name: "Main Gate", Point: domain.Point{Lat: 7.5227, Lng: 4.5198}, Category: domain.CategoryEntrance, Description: "Primary campus entrance"},
	{ID: "sub", Name: "Student Union Building (SUB)", Point: domain.Point{Lat: 7.5245, Lng: 4.5203}, Category: domain.CategoryBuilding, Description: "Student activities center"},
	{ID: "oduduwa_hall", Name: "Oduduwa Hall", Point: domain.Point{Lat: 7.5234, Lng: 4.5189}, Category: domain.CategoryHall, Description: "Main auditorium"},

	// Учебные корпуса
	{ID: "futa", Name: "Faculty of Technology", Point: domain.Point{Lat: 7.5256, Lng: 4.5210}, Category: domain.CategoryFaculty, Description: "Engineering and Technology faculty"},
	{ID: "science_complex", Name: "Science Complex", Point: domain.Point{Lat: 7.5240, Lng: 4.5220}, Category: domain.CategoryFaculty, Description: "Pure and Applied Sciences"},
	{ID: "arts_theatre", Name: "Arts Theatre", Point: domain.Point{Lat: 7.5230, Lng: 4.5180}, Category: domain.CategoryTheatre, Description: "Creative Arts faculty"},

	// Общежития
	{ID: "mozambique_hostel", Name: "Mozambique Hostel", Point: domain.Point{Lat: 7.5280, Lng: 4.5167}, Category: domain.CategoryHostel, Description: "Student accommodation"},
	{ID: "angola_hostel", Name: "Angola Hostel", Point: domain.Point{Lat: 7.5289, Lng: 4.5134}, Category: domain.CategoryHostel, Description: "Student accommodation"},
	{ID: "madagascar_hostel", Name: "Madagascar Hostel", Point: domain.Point{Lat: 7.5295, Lng: 4.5145}, Category: domain.CategoryHostel, Description: "Student accommodation"},
	{ID: "awolowo_hall", Name: "Awolowo Hall", Point: domain.Point{Lat: 7.5270, Lng: 4.5150}, Category: domain.CategoryHostel, Description: "Premier student hall"},

	// Сервисы
	{ID: "sports_complex", Name: "Sports Complex", Point: domain.Point{Lat: 7.5198, Lng: 4.5234}, Category: domain.CategorySports, Description: "Sports and recreational facilities"},
	{ID: "teaching_hospital", Name: "OAU Teaching Hospital (OAUTHC)", Point: domain.Point{Lat: 7.5345, Lng: 4.5123}, Category: domain.CategoryHospital, Description: "Medical center"},
	{ID: "central_library", Name: "Hezekiah Oluwasanmi Library", Point: domain.Point{Lat: 7.5250, Lng: 4.5200}, Category: domain.CategoryLibrary, Description: "Main university library"},

	// Ворота
	{ID: "back_gate", Name: "Back Gate", Point: domain.Point{Lat: 7.5320, Lng: 4.5180}, Category: domain.CategoryEntrance, Description: "Secondary campus entrance"},
	{ID: "coop_gate", Name: "Cooperative Gate", Point: domain.Point{Lat: 7.5200, Lng: 4.5280}, Category: domain.CategoryEntrance, Description: "Residential area entrance"},

	// Популярные места
	{ID: "buka_junction", Name: "Buka Junction", Point: domain.Point{Lat: 7.5260, Lng: 4.5190}, Category: domain.CategoryFood, Description: "Popular food court area"},
	{ID: "atm_point", Name: "Banking Complex", Point: domain.Point{Lat: 7.5235, Lng: 4.5195}, Category: domain.CategoryService, Description: "ATMs and banking services"},
	{ID: "chapel_of_wisdom", Name: "Chapel of Wisdom", Point: domain.Point{Lat: 7.5225, Lng: 4.5175}, Category: domain.CategoryReligious, Description: "University chapel"},
}
