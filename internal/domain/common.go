package domain

// Point — географическая точка (широта/долгота в градусах)
type Point struct {
	Lat float64 `json:"lat" db:"latitude"`
	Lng float64 `json:"lng" db:"longitude"`
}

// Zone — именованная зона кампуса
type Zone string

const (
	ZoneAcademic    Zone = "Academic Zone"
	ZoneResidential Zone = "Student Residential Zone"
	ZoneMedical     Zone = "Medical Zone"
	ZoneSports      Zone = "Sports & Recreation Zone"
	ZoneGeneral     Zone = "General Campus Area"
)

// ZoneCount — количество событий в зоне (для отсортированных распределений)
type ZoneCount struct {
	Zone  Zone `json:"zone"`
	Count int  `json:"count"`
}

// RoleCounts — разбивка активности по ролям
type RoleCounts struct {
	Drivers    int `json:"drivers"`
	Passengers int `json:"passengers"`
	Total      int `json:"total"`
}
