package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trip-recommender/internal/domain"
	"github.com/trip-recommender/internal/domain/repository"
	apperrors "github.com/trip-recommender/internal/pkg/errors"
)

// Имена колонок исходного датасета
const (
	colName        = "Name"
	colCity        = "City"
	colState       = "State"
	colZone        = "Zone"
	colType        = "Type"
	colLat         = "Latitude"
	colLon         = "Longitude"
	colVisitHours  = "time needed to visit in hrs"
	colRating      = "Google review rating"
	colFee         = "Entrance Fee in INR"
	colSignificant = "Significance"
	colEstablished = "Establishment Year"
)

// Колонки, без которых каталог непригоден для подбора городов
var requiredColumns = []string{colName, colCity, colLat, colLon}

// csvRepository - in-memory каталог, загруженный из CSV один раз при старте.
// После загрузки данные только читаются, поэтому конкурентные запросы
// безопасны без блокировок.
type csvRepository struct {
	places []domain.Place
	stats  *domain.CatalogStats
	logger *zap.Logger
}

// NewCSVRepository читает и валидирует CSV-файл каталога.
// Строки без координат пропускаются (в датасете есть пропуски LatLong),
// отсутствие обязательной колонки - это schema error, а не пустой каталог.
func NewCSVRepository(path string, logger *zap.Logger) (repository.PlaceRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog csv: %w", err)
	}
	if len(records) == 0 {
		return nil, apperrors.ErrCatalogSchema.WithDetails(map[string]interface{}{
			"reason": "catalog file is empty",
		})
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, apperrors.ErrCatalogSchema.WithDetails(map[string]interface{}{
				"missing_column": required,
			})
		}
	}

	places := make([]domain.Place, 0, len(records)-1)
	skipped := 0

	for _, row := range records[1:] {
		place, ok := parseRow(row, columns)
		if !ok {
			skipped++
			continue
		}
		places = append(places, place)
	}

	logger.Info("Catalog loaded from CSV",
		zap.String("path", path),
		zap.Int("places", len(places)),
		zap.Int("skipped_rows", skipped),
	)

	return &csvRepository{
		places: places,
		stats:  buildStats(places, "csv"),
		logger: logger,
	}, nil
}

// parseRow собирает Place из строки CSV; строки без имени, города или
// валидных координат отбраковываются
func parseRow(row []string, columns map[string]int) (domain.Place, bool) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	name := field(colName)
	city := field(colCity)
	if name == "" || city == "" {
		return domain.Place{}, false
	}

	lat, errLat := strconv.ParseFloat(field(colLat), 64)
	lon, errLon := strconv.ParseFloat(field(colLon), 64)
	if errLat != nil || errLon != nil {
		return domain.Place{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return domain.Place{}, false
	}

	place := domain.Place{
		ID:   uuid.New(),
		Name: name,
		City: city,
		Type: field(colType),
		Lat:  lat,
		Lon:  lon,
	}

	if v := field(colState); v != "" {
		place.State = &v
	}
	if v := field(colZone); v != "" {
		place.Zone = &v
	}
	if v, err := strconv.ParseFloat(field(colRating), 64); err == nil {
		place.Rating = v
	}
	if v, err := strconv.ParseFloat(field(colVisitHours), 64); err == nil {
		place.VisitHours = v
	}
	if v, err := strconv.Atoi(field(colFee)); err == nil {
		place.EntranceFee = &v
	}
	if v := field(colSignificant); v != "" {
		place.Significance = &v
	}
	if v := field(colEstablished); v != "" {
		place.EstablishedIn = &v
	}

	return place, true
}

func buildStats(places []domain.Place, source string) *domain.CatalogStats {
	stats := &domain.CatalogStats{
		TotalPlaces: len(places),
		ByType:      make(map[string]int),
		LoadedAt:    time.Now(),
		Source:      source,
	}

	cities := make(map[string]struct{})
	for i, p := range places {
		cities[strings.ToLower(p.City)] = struct{}{}
		if p.Type != "" {
			stats.ByType[p.Type]++
		}

		if i == 0 {
			stats.Coverage = domain.CoverageStats{
				BBoxMinLat: p.Lat, BBoxMaxLat: p.Lat,
				BBoxMinLon: p.Lon, BBoxMaxLon: p.Lon,
			}
			continue
		}
		if p.Lat < stats.Coverage.BBoxMinLat {
			stats.Coverage.BBoxMinLat = p.Lat
		}
		if p.Lat > stats.Coverage.BBoxMaxLat {
			stats.Coverage.BBoxMaxLat = p.Lat
		}
		if p.Lon < stats.Coverage.BBoxMinLon {
			stats.Coverage.BBoxMinLon = p.Lon
		}
		if p.Lon > stats.Coverage.BBoxMaxLon {
			stats.Coverage.BBoxMaxLon = p.Lon
		}
	}
	stats.TotalCities = len(cities)

	return stats
}

// All возвращает каталог в порядке загрузки; вызывающие не мутируют слайс
func (r *csvRepository) All(_ context.Context) ([]domain.Place, error) {
	return r.places, nil
}

// ListByCity возвращает места города, опционально отфильтрованные по типам
func (r *csvRepository) ListByCity(_ context.Context, city string, types []string) ([]domain.Place, error) {
	wanted := strings.ToLower(strings.TrimSpace(city))
	if wanted == "" {
		return nil, apperrors.ErrInvalidRequest
	}

	typeSet := make(map[string]struct{}, len(types))
	for _, t := range types {
		typeSet[strings.ToLower(t)] = struct{}{}
	}

	var result []domain.Place
	for _, p := range r.places {
		if strings.ToLower(p.City) != wanted {
			continue
		}
		if len(typeSet) > 0 {
			if _, ok := typeSet[strings.ToLower(p.Type)]; !ok {
				continue
			}
		}
		result = append(result, p)
	}

	return result, nil
}

func (r *csvRepository) Stats(_ context.Context) (*domain.CatalogStats, error) {
	return r.stats, nil
}
