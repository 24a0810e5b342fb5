package domain

import (
	"github.com/trip-recommender/internal/pkg/errors"
)

// Доли usable-часов: две трети на дорогу, треть на осмотр (не настраивается)
const (
	travelFraction  = 2.0 / 3.0
	exploreFraction = 1.0 / 3.0
)

// TripParams - входные параметры расчёта бюджета поездки.
// Days и SpeedKmh приходят от пользователя, часовые нормы - из конфига.
type TripParams struct {
	Days        int
	SpeedKmh    float64
	SleepHours  float64
	MealHours   float64
	BufferHours float64
	Relaxed     bool
}

// TravelBudget - результат расчёта: максимальная достижимая дистанция
// и раскладка usable-часов
type TravelBudget struct {
	MaxDistanceKm float64 `json:"max_distance_km"`
	UsableHours   float64 `json:"usable_hours"`
	TravelHours   float64 `json:"travel_hours"`
	ExploreHours  float64 `json:"explore_hours"`
}

// EstimateTravelBudget переводит длительность поездки и скорость в
// максимальную дистанцию. Из суточных 24 часов вычитаются фиксированные
// затраты (сон, еда, буфер); relaxed добавляет (sleep - 4) часа один раз
// за всю поездку, а не за каждый день - так задумано.
func EstimateTravelBudget(p TripParams) (*TravelBudget, error) {
	if p.Days < 1 {
		return nil, errors.ErrInvalidTripParams.WithDetails(map[string]interface{}{
			"days":   p.Days,
			"reason": "trip length must be at least 1 day",
		})
	}
	if p.SpeedKmh <= 0 {
		return nil, errors.ErrInvalidTripParams.WithDetails(map[string]interface{}{
			"speed":  p.SpeedKmh,
			"reason": "speed must be positive",
		})
	}

	totalHours := float64(p.Days) * 24
	usable := totalHours - float64(p.Days)*(p.SleepHours+p.MealHours+p.BufferHours)

	if p.Relaxed {
		usable += p.SleepHours - 4
	}

	if usable < 0 {
		return nil, errors.ErrInvalidTripParams.WithDetails(map[string]interface{}{
			"usable_hours": usable,
			"reason":       "daily allocations exceed 24 hours",
		})
	}

	travel := travelFraction * usable
	explore := exploreFraction * usable

	return &TravelBudget{
		MaxDistanceKm: travel * p.SpeedKmh,
		UsableHours:   usable,
		TravelHours:   travel,
		ExploreHours:  explore,
	}, nil
}

// DistanceBand - допустимый интервал расстояний вокруг целевой дистанции
type DistanceBand struct {
	TargetKm    float64
	ToleranceKm float64
}

// Min возвращает нижнюю границу интервала, не опускаясь ниже нуля
func (b DistanceBand) Min() float64 {
	if b.TargetKm-b.ToleranceKm < 0 {
		return 0
	}
	return b.TargetKm - b.ToleranceKm
}

// Max возвращает верхнюю границу интервала
func (b DistanceBand) Max() float64 {
	return b.TargetKm + b.ToleranceKm
}

// Contains проверяет попадание дистанции в интервал (границы включительно)
func (b DistanceBand) Contains(distanceKm float64) bool {
	return distanceKm >= b.Min() && distanceKm <= b.Max()
}
