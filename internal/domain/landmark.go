package domain

// LandmarkCategory — категория точки интереса кампуса
type LandmarkCategory string

const (
	CategoryEntrance  LandmarkCategory = "entrance"
	CategoryBuilding  LandmarkCategory = "building"
	CategoryHall      LandmarkCategory = "hall"
	CategoryTheatre   LandmarkCategory = "theatre"
	CategoryFaculty   LandmarkCategory = "faculty"
	CategoryHostel    LandmarkCategory = "hostel"
	CategorySports    LandmarkCategory = "sports"
	CategoryHospital  LandmarkCategory = "hospital"
	CategoryLibrary   LandmarkCategory = "library"
	CategoryFood      LandmarkCategory = "food"
	CategoryService   LandmarkCategory = "service"
	CategoryReligious LandmarkCategory = "religious"
)

var landmarkCategories = map[LandmarkCategory]struct{}{
	CategoryEntrance: {}, CategoryBuilding: {}, CategoryHall: {}, CategoryTheatre: {},
	CategoryFaculty: {}, CategoryHostel: {}, CategorySports: {}, CategoryHospital: {},
	CategoryLibrary: {}, CategoryFood: {}, CategoryService: {}, CategoryReligious: {},
}

// ValidLandmarkCategory проверяет, известна ли категория ориентира
func ValidLandmarkCategory(cat LandmarkCategory) bool {
	_, ok := landmarkCategories[cat]
	return ok
}

// Landmark — неизменяемая точка интереса кампуса.
// Каталог ориентиров компилируется в бинарник и загружается один раз.
type Landmark struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Point       Point            `json:"point"`
	Category    LandmarkCategory `json:"category"`
	Description string           `json:"description"`
}

// NearbyLandmark — ориентир с расстоянием до опорной точки
type NearbyLandmark struct {
	Landmark
	DistanceMeters float64 `json:"distance_meters"`
}
