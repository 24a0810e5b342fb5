package repository

import (
	"context"

	"github.com/trip-recommender/internal/domain"
)

// GeocoderRepository - интерфейс внешнего геокодера (свободный текст -> координаты)
type GeocoderRepository interface {
	// Geocode возвращает координаты по текстовому названию места.
	// Если место не найдено, возвращает errors.ErrLocationNotFound.
	Geocode(ctx context.Context, query string) (*domain.Point, error)
}
