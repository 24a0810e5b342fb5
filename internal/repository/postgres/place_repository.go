package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/trip-recommender/internal/domain"
	"github.com/trip-recommender/internal/domain/repository"
)

// placeRepository - каталог мест поверх таблицы places.
// Источник для инсталляций, где каталог больше, чем удобно держать в CSV;
// контракт тот же, что у in-memory реализации.
type placeRepository struct {
	db *DB
}

// NewPlaceRepository создает новый экземпляр place repository
func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

const placeColumns = `
	id, name, city, state, zone, type, lat, lon,
	rating, visit_hours, entrance_fee, significance, established_in
`

// All возвращает каталог в стабильном порядке загрузки (seq)
func (r *placeRepository) All(ctx context.Context) ([]domain.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM places ORDER BY seq`, placeColumns)

	var places []domain.Place
	if err := r.db.SelectContext(ctx, &places, query); err != nil {
		r.db.logger.Error("failed to load places", zap.Error(err))
		return nil, fmt.Errorf("select places: %w", err)
	}

	return places, nil
}

// ListByCity возвращает места города, опционально отфильтрованные по типам
func (r *placeRepository) ListByCity(ctx context.Context, city string, types []string) ([]domain.Place, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM places
		WHERE LOWER(city) = LOWER($1)`, placeColumns)

	args := []interface{}{strings.TrimSpace(city)}
	if len(types) > 0 {
		query += ` AND LOWER(type) = ANY($2)`
		lowered := make([]string, len(types))
		for i, t := range types {
			lowered[i] = strings.ToLower(t)
		}
		args = append(args, pq.Array(lowered))
	}
	query += ` ORDER BY rating DESC, seq`

	var places []domain.Place
	if err := r.db.SelectContext(ctx, &places, query, args...); err != nil {
		r.db.logger.Error("failed to list places by city",
			zap.String("city", city),
			zap.Error(err))
		return nil, fmt.Errorf("select places by city: %w", err)
	}

	return places, nil
}

// Stats возвращает агрегированную статистику по каталогу
func (r *placeRepository) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	var totals struct {
		TotalPlaces int     `db:"total_places"`
		TotalCities int     `db:"total_cities"`
		MinLat      float64 `db:"min_lat"`
		MaxLat      float64 `db:"max_lat"`
		MinLon      float64 `db:"min_lon"`
		MaxLon      float64 `db:"max_lon"`
	}

	err := r.db.GetContext(ctx, &totals, `
		SELECT
			COUNT(*)                    AS total_places,
			COUNT(DISTINCT LOWER(city)) AS total_cities,
			COALESCE(MIN(lat), 0)       AS min_lat,
			COALESCE(MAX(lat), 0)       AS max_lat,
			COALESCE(MIN(lon), 0)       AS min_lon,
			COALESCE(MAX(lon), 0)       AS max_lon
		FROM places`)
	if err != nil {
		r.db.logger.Error("failed to get catalog totals", zap.Error(err))
		return nil, fmt.Errorf("catalog totals: %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, `
		SELECT type, COUNT(*) AS cnt
		FROM places
		WHERE type <> ''
		GROUP BY type`)
	if err != nil {
		r.db.logger.Error("failed to get catalog type stats", zap.Error(err))
		return nil, fmt.Errorf("catalog type stats: %w", err)
	}
	defer rows.Close()

	byType := make(map[string]int)
	for rows.Next() {
		var (
			placeType string
			cnt       int
		)
		if err := rows.Scan(&placeType, &cnt); err != nil {
			return nil, fmt.Errorf("scan type stats: %w", err)
		}
		byType[placeType] = cnt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate type stats: %w", err)
	}

	return &domain.CatalogStats{
		TotalPlaces: totals.TotalPlaces,
		TotalCities: totals.TotalCities,
		ByType:      byType,
		Coverage: domain.CoverageStats{
			BBoxMinLat: totals.MinLat,
			BBoxMaxLat: totals.MaxLat,
			BBoxMinLon: totals.MinLon,
			BBoxMaxLon: totals.MaxLon,
		},
		LoadedAt: time.Now(),
		Source:   "postgres",
	}, nil
}
