package domain

// accessibilityScores — фиксированные оценки доступности по категориям ориентиров.
// Категории без записи получают DefaultAccessibilityScore.
var accessibilityScores = map[LandmarkCategory]float64{
	CategoryEntrance:  90,
	CategoryBuilding:  80,
	CategoryHall:      75,
	CategoryFaculty:   85,
	CategoryHostel:    70,
	CategorySports:    60,
	CategoryHospital:  95,
	CategoryLibrary:   85,
	CategoryFood:      65,
	CategoryService:   70,
	CategoryReligious: 60,
}

// DefaultAccessibilityScore — оценка для неизвестных категорий
const DefaultAccessibilityScore = 50.0

// AccessibilityScore возвращает оценку доступности категории
func AccessibilityScore(cat LandmarkCategory) float64 {
	if score, ok := accessibilityScores[cat]; ok {
		return score
	}
	return DefaultAccessibilityScore
}

// safePickupLandmarks — ориентиры с постоянным присутствием охраны/персонала
var safePickupLandmarks = map[string]struct{}{
	"main_gate":         {},
	"sub":               {},
	"teaching_hospital": {},
	"central_library":   {},
}

// IsSafePickupLandmark проверяет, входит ли ориентир в безопасный список
func IsSafePickupLandmark(id string) bool {
	_, ok := safePickupLandmarks[id]
	return ok
}

// securityLandmarks — ориентиры с постом охраны (для анализа безопасности локации)
var securityLandmarks = map[string]struct{}{
	"main_gate":         {},
	"back_gate":         {},
	"teaching_hospital": {},
	"sub":               {},
}

// HasSecurityPresence проверяет наличие поста охраны у ориентира
func HasSecurityPresence(id string) bool {
	_, ok := securityLandmarks[id]
	return ok
}
