package domain

import (
	"time"

	"github.com/google/uuid"
)

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// Contains проверяет попадание точки в прямоугольник (границы включительно)
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// Place представляет достопримечательность из каталога.
// Каталог загружается один раз при старте и далее только читается;
// записи не мутируются ни одним из запросов.
type Place struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	City          string    `json:"city" db:"city"`
	State         *string   `json:"state,omitempty" db:"state"`
	Zone          *string   `json:"zone,omitempty" db:"zone"`
	Type          string    `json:"type" db:"type"`
	Lat           float64   `json:"lat" db:"lat"`
	Lon           float64   `json:"lon" db:"lon"`
	Rating        float64   `json:"google_rating" db:"rating"`
	VisitHours    float64   `json:"visit_hours" db:"visit_hours"`
	EntranceFee   *int      `json:"entrance_fee_inr,omitempty" db:"entrance_fee"`
	Significance  *string   `json:"significance,omitempty" db:"significance"`
	EstablishedIn *string   `json:"established_in,omitempty" db:"established_in"`
}

// HasLocality проверяет наличие полей, обязательных для группировки по городу
func (p *Place) HasLocality() bool {
	return p.City != ""
}

// CatalogStats - агрегированная статистика по загруженному каталогу
type CatalogStats struct {
	TotalPlaces int            `json:"total_places"`
	TotalCities int            `json:"total_cities"`
	ByType      map[string]int `json:"by_type"`
	Coverage    CoverageStats  `json:"coverage"`
	LoadedAt    time.Time      `json:"loaded_at"`
	Source      string         `json:"source"`
}

// CoverageStats - покрытие каталога по координатам
type CoverageStats struct {
	BBoxMinLat float64 `json:"bbox_min_lat"`
	BBoxMaxLat float64 `json:"bbox_max_lat"`
	BBoxMinLon float64 `json:"bbox_min_lon"`
	BBoxMaxLon float64 `json:"bbox_max_lon"`
}
