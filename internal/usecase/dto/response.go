package dto

import "github.com/trip-recommender/internal/domain"

// RecommendedCity - город в выдаче рекомендаций
type RecommendedCity struct {
	City         string  `json:"city"`
	DistanceKm   float64 `json:"distance_km"`
	NearestPlace string  `json:"nearest_place"`
}

// RecommendResponse - результат подбора городов
type RecommendResponse struct {
	Origin            domain.Point      `json:"origin"`
	MaxDistanceKm     float64           `json:"max_distance_km"`
	UsableHours       float64           `json:"usable_hours"`
	RecommendedCities []RecommendedCity `json:"recommended_cities"`
}

// PlaceInfo - достопримечательность в выдаче по городу
type PlaceInfo struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	VisitHours   float64 `json:"visit_hours"`
	GoogleRating float64 `json:"google_rating"`
}

// CityPlacesResponse - достопримечательности города
type CityPlacesResponse struct {
	City   string      `json:"city"`
	Places []PlaceInfo `json:"places"`
}

// ItineraryResponse - сгенерированный маршрут
type ItineraryResponse struct {
	City      string            `json:"city"`
	Itinerary *domain.Itinerary `json:"itinerary,omitempty"`
	RawOutput string            `json:"raw_output,omitempty"`
	Parsed    bool              `json:"parsed"`
}

// ItineraryQueuedResponse - подтверждение постановки генерации в очередь
type ItineraryQueuedResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}
