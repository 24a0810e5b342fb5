package repository

import (
	"context"
	"time"

	"github.com/trip-recommender/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil, nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetGeocode получает закешированный результат геокодирования
	GetGeocode(ctx context.Context, query string) (*domain.Point, error)

	// SetGeocode сохраняет результат геокодирования
	SetGeocode(ctx context.Context, query string, point *domain.Point, ttl time.Duration) error
}
