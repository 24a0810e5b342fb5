package usecase

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/trip-recommender/internal/domain/repository"
	apperrors "github.com/trip-recommender/internal/pkg/errors"
	"github.com/trip-recommender/internal/usecase/dto"
)

// PlaceUseCase - выдача достопримечательностей по городу
type PlaceUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

func NewPlaceUseCase(placeRepo repository.PlaceRepository, logger *zap.Logger) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// CityPlaces возвращает места города, отсортированные по рейтингу
func (uc *PlaceUseCase) CityPlaces(ctx context.Context, req dto.CityPlacesRequest) (*dto.CityPlacesResponse, error) {
	places, err := uc.placeRepo.ListByCity(ctx, req.City, req.Types)
	if err != nil {
		uc.logger.Error("Failed to list city places", zap.String("city", req.City), zap.Error(err))
		return nil, err
	}

	// пустой результат без фильтра по типам означает неизвестный город
	if len(places) == 0 && len(req.Types) == 0 {
		return nil, apperrors.ErrCityNotFound.WithDetails(map[string]interface{}{
			"city": req.City,
		})
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Rating > places[j].Rating
	})

	resp := &dto.CityPlacesResponse{
		City:   req.City,
		Places: make([]dto.PlaceInfo, 0, len(places)),
	}
	for _, p := range places {
		resp.Places = append(resp.Places, dto.PlaceInfo{
			Name:         p.Name,
			Type:         p.Type,
			VisitHours:   p.VisitHours,
			GoogleRating: p.Rating,
		})
	}

	return resp, nil
}
