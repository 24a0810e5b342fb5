package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/trip-recommender/internal/config"
	"github.com/trip-recommender/internal/domain"
	"github.com/trip-recommender/internal/domain/repository"
	apperrors "github.com/trip-recommender/internal/pkg/errors"
	"github.com/trip-recommender/internal/pkg/utils"
	"github.com/trip-recommender/internal/usecase/dto"
)

// RecommendUseCase - подбор городов под бюджет поездки
type RecommendUseCase struct {
	placeRepo repository.PlaceRepository
	geocoder  repository.GeocoderRepository
	cacheRepo repository.CacheRepository
	tripCfg   config.TripConfig
	cacheCfg  config.CacheConfig
	logger    *zap.Logger
}

func NewRecommendUseCase(
	placeRepo repository.PlaceRepository,
	geocoder repository.GeocoderRepository,
	cacheRepo repository.CacheRepository,
	tripCfg config.TripConfig,
	cacheCfg config.CacheConfig,
	logger *zap.Logger,
) *RecommendUseCase {
	return &RecommendUseCase{
		placeRepo: placeRepo,
		geocoder:  geocoder,
		cacheRepo: cacheRepo,
		tripCfg:   tripCfg,
		cacheCfg:  cacheCfg,
		logger:    logger,
	}
}

// Recommend возвращает города, достижимые за отведённое на дорогу время
func (uc *RecommendUseCase) Recommend(ctx context.Context, req dto.RecommendRequest) (*dto.RecommendResponse, error) {
	speed := req.SpeedKmh
	if speed == 0 {
		speed = uc.tripCfg.DefaultSpeedKmh
	}

	cacheKey := fmt.Sprintf("recommend:%s:%d:%.1f:%t",
		strings.ToLower(strings.TrimSpace(req.UserLocation)), req.TripDays, speed, req.Relaxed)

	if cached := uc.getCachedResponse(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	origin, err := uc.resolveOrigin(ctx, req.UserLocation)
	if err != nil {
		return nil, err
	}

	if !utils.ValidateCoordinates(origin.Lat, origin.Lon) {
		return nil, apperrors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"lat": origin.Lat,
			"lon": origin.Lon,
		})
	}

	budget, err := domain.EstimateTravelBudget(domain.TripParams{
		Days:        req.TripDays,
		SpeedKmh:    speed,
		SleepHours:  uc.tripCfg.SleepHours,
		MealHours:   uc.tripCfg.MealHours,
		BufferHours: uc.tripCfg.BufferHours,
		Relaxed:     req.Relaxed,
	})
	if err != nil {
		return nil, err
	}

	places, err := uc.placeRepo.All(ctx)
	if err != nil {
		uc.logger.Error("Failed to load place catalog", zap.Error(err))
		return nil, err
	}

	band := domain.DistanceBand{
		TargetKm:    budget.MaxDistanceKm,
		ToleranceKm: uc.tripCfg.ToleranceKm,
	}

	cities, err := selectDestinations(places, *origin, band, uc.tripCfg.ResultLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.RecommendResponse{
		Origin:            *origin,
		MaxDistanceKm:     round2(budget.MaxDistanceKm),
		UsableHours:       round2(budget.UsableHours),
		RecommendedCities: cities,
	}

	uc.setCachedResponse(ctx, cacheKey, resp)

	uc.logger.Info("Recommendation computed",
		zap.String("location", req.UserLocation),
		zap.Int("trip_days", req.TripDays),
		zap.Float64("max_distance_km", resp.MaxDistanceKm),
		zap.Int("cities", len(cities)))

	return resp, nil
}

// resolveOrigin геокодирует точку старта, сначала через кэш
func (uc *RecommendUseCase) resolveOrigin(ctx context.Context, query string) (*domain.Point, error) {
	if point, err := uc.cacheRepo.GetGeocode(ctx, query); err == nil && point != nil {
		return point, nil
	}

	point, err := uc.geocoder.Geocode(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetGeocode(ctx, query, point, uc.cacheCfg.GeocodeCacheTTL); err != nil {
		uc.logger.Warn("Failed to cache geocode result", zap.String("query", query), zap.Error(err))
	}

	return point, nil
}

func (uc *RecommendUseCase) getCachedResponse(ctx context.Context, key string) *dto.RecommendResponse {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var resp dto.RecommendResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("Corrupted cache entry", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &resp
}

func (uc *RecommendUseCase) setCachedResponse(ctx context.Context, key string, resp *dto.RecommendResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheCfg.RecommendCacheTTL); err != nil {
		uc.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

type scoredPlace struct {
	place      domain.Place
	distanceKm float64
}

// selectDestinations отбирает города в дистанционной полосе вокруг цели.
// Предфильтр по bounding box отсекает заведомо далёкие места без тригонометрии,
// затем точная дистанция, полоса с включёнными границами, устойчивая сортировка
// и дедупликация городов: для каждого города остаётся ближайшее место.
func selectDestinations(places []domain.Place, origin domain.Point, band domain.DistanceBand, limit int) ([]dto.RecommendedCity, error) {
	box := utils.BoundingBoxAround(origin, band.Max())

	candidates := make([]scoredPlace, 0, 64)
	for _, p := range places {
		if !box.Contains(p.Lat, p.Lon) {
			continue
		}
		d := utils.HaversineDistance(origin.Lat, origin.Lon, p.Lat, p.Lon)
		if !band.Contains(d) {
			continue
		}
		candidates = append(candidates, scoredPlace{place: p, distanceKm: d})
	}

	// при равных дистанциях сохраняется порядок каталога
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distanceKm < candidates[j].distanceKm
	})

	seen := make(map[string]struct{}, limit)
	result := make([]dto.RecommendedCity, 0, limit)
	for _, c := range candidates {
		if !c.place.HasLocality() {
			return nil, apperrors.ErrCatalogSchema.WithDetails(map[string]interface{}{
				"place_id": c.place.ID.String(),
				"name":     c.place.Name,
				"reason":   "place has no city",
			})
		}
		key := strings.ToLower(c.place.City)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, dto.RecommendedCity{
			City:         c.place.City,
			DistanceKm:   round2(c.distanceKm),
			NearestPlace: c.place.Name,
		})
		if len(result) == limit {
			break
		}
	}

	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
