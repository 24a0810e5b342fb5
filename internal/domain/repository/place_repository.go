package repository

import (
	"context"

	"github.com/trip-recommender/internal/domain"
)

// PlaceRepository определяет read-only доступ к каталогу достопримечательностей.
// Каталог валидируется и загружается один раз при старте сервиса; реализации
// обязаны быть безопасными для конкурентных запросов.
type PlaceRepository interface {
	// All возвращает все записи каталога в исходном порядке загрузки
	All(ctx context.Context) ([]domain.Place, error)

	// ListByCity возвращает места города (регистронезависимо), опционально
	// отфильтрованные по типам
	ListByCity(ctx context.Context, city string, types []string) ([]domain.Place, error)

	// Stats возвращает агрегированную статистику по каталогу
	Stats(ctx context.Context) (*domain.CatalogStats, error)
}
