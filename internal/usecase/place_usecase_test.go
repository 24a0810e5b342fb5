package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-recommender/internal/domain"
	apperrors "github.com/trip-recommender/internal/pkg/errors"
	"github.com/trip-recommender/internal/usecase"
	"github.com/trip-recommender/internal/usecase/dto"
)

func ratedPlace(name, placeType string, rating float64) domain.Place {
	return domain.Place{
		ID:         uuid.New(),
		Name:       name,
		City:       "Jaipur",
		Type:       placeType,
		Rating:     rating,
		VisitHours: 2,
	}
}

func TestPlaceUseCase_CityPlaces(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("returns places sorted by rating", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("ListByCity", ctx, "Jaipur", []string(nil)).Return([]domain.Place{
			ratedPlace("City Palace", "Palace", 4.5),
			ratedPlace("Hawa Mahal", "Palace", 4.7),
			ratedPlace("Jantar Mantar", "Observatory", 4.3),
		}, nil)

		uc := usecase.NewPlaceUseCase(placeRepo, logger)

		resp, err := uc.CityPlaces(ctx, dto.CityPlacesRequest{City: "Jaipur"})

		require.NoError(t, err)
		require.Len(t, resp.Places, 3)
		assert.Equal(t, "Hawa Mahal", resp.Places[0].Name)
		assert.Equal(t, "City Palace", resp.Places[1].Name)
		assert.Equal(t, "Jantar Mantar", resp.Places[2].Name)
		placeRepo.AssertExpectations(t)
	})

	t.Run("unknown city returns not found", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("ListByCity", ctx, "Atlantis", []string(nil)).Return([]domain.Place{}, nil)

		uc := usecase.NewPlaceUseCase(placeRepo, logger)

		resp, err := uc.CityPlaces(ctx, dto.CityPlacesRequest{City: "Atlantis"})

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, errors.Is(err, apperrors.ErrCityNotFound))
	})

	t.Run("empty result with a type filter is not an error", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("ListByCity", ctx, "Jaipur", []string{"Beach"}).Return([]domain.Place{}, nil)

		uc := usecase.NewPlaceUseCase(placeRepo, logger)

		resp, err := uc.CityPlaces(ctx, dto.CityPlacesRequest{City: "Jaipur", Types: []string{"Beach"}})

		require.NoError(t, err)
		assert.Empty(t, resp.Places)
	})

	t.Run("repository failure is propagated", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		placeRepo.On("ListByCity", ctx, "Jaipur", []string(nil)).Return(nil, apperrors.ErrDatabaseError)

		uc := usecase.NewPlaceUseCase(placeRepo, logger)

		resp, err := uc.CityPlaces(ctx, dto.CityPlacesRequest{City: "Jaipur"})

		require.Error(t, err)
		assert.Nil(t, resp)
	})
}
