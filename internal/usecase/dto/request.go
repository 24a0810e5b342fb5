package dto

// RecommendRequest - запрос на подбор городов под длительность поездки
type RecommendRequest struct {
	UserLocation string  `json:"user_location" validate:"required,min=2"`
	TripDays     int     `json:"trip_days" validate:"required,min=1,max=60"`
	SpeedKmh     float64 `json:"speed" validate:"omitempty,gt=0,max=300"`
	Relaxed      bool    `json:"relaxed"`
}

// CityPlacesRequest - запрос достопримечательностей города
type CityPlacesRequest struct {
	City  string   `json:"city" validate:"required,min=2"`
	Types []string `json:"types,omitempty" validate:"omitempty,max=10,dive,min=1"`
}

// ItineraryRequest - запрос на генерацию маршрута по городу
type ItineraryRequest struct {
	City           string   `json:"city" validate:"required,min=2"`
	TripDays       int      `json:"trip_days" validate:"required,min=1,max=30"`
	ArrivalInfo    string   `json:"arrival_info" validate:"required,min=3"`
	PreferredTypes []string `json:"preferred_types" validate:"required,min=1,dive,min=2"`
	Group          string   `json:"group" validate:"required,min=2"`
	Pace           string   `json:"pace" validate:"required,oneof=Relaxed Moderate Fast"`
}
