package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-recommender/internal/domain"
	apperrors "github.com/trip-recommender/internal/pkg/errors"
	"github.com/trip-recommender/internal/usecase"
	"github.com/trip-recommender/internal/usecase/dto"
)

func itineraryRequest() dto.ItineraryRequest {
	return dto.ItineraryRequest{
		City:           "Jaipur",
		TripDays:       2,
		ArrivalInfo:    "Morning train",
		PreferredTypes: []string{"Palace", "Fort"},
		Group:          "Family",
		Pace:           "Moderate",
	}
}

func TestItineraryUseCase_Generate(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("valid JSON from the model is parsed", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		llm := &MockLLMRepository{}

		placeRepo.On("ListByCity", ctx, "Jaipur", []string(nil)).Return([]domain.Place{
			ratedPlace("Hawa Mahal", "Palace", 4.7),
			ratedPlace("Amber Fort", "Fort", 4.6),
		}, nil)

		llm.On("Chat", ctx, mock.Anything, mock.Anything).Return(
			`{"city":"Jaipur","days":[{"day":1,"theme":"Palaces","visits":[{"place":"Hawa Mahal","time":"09:00","notes":"go early","duration":"2h"}]}]}`,
			nil)

		uc := usecase.NewItineraryUseCase(placeRepo, llm, nil, logger)

		result, err := uc.Generate(ctx, itineraryRequest())

		require.NoError(t, err)
		assert.True(t, result.Parsed)
		require.NotNil(t, result.Itinerary)
		assert.Equal(t, "Jaipur", result.Itinerary.City)
		require.Len(t, result.Itinerary.Days, 1)
		assert.Equal(t, "Hawa Mahal", result.Itinerary.Days[0].Visits[0].Place)
	})

	t.Run("code fence around the JSON is tolerated", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		llm := &MockLLMRepository{}

		placeRepo.On("ListByCity", ctx, "Jaipur", []string(nil)).Return([]domain.Place{
			ratedPlace("Hawa Mahal", "Palace", 4.7),
		}, nil)

		llm.On("Chat", ctx, mock.Anything, mock.Anything).Return(
			"```json\n{\"city\":\"Jaipur\",\"days\":[]}\n```", nil)

		uc := usecase.NewItineraryUseCase(placeRepo, llm, nil, logger)

		result, err := uc.Generate(ctx, itineraryRequest())

		require.NoError(t, err)
		assert.True(t, result.Parsed)
		assert.Equal(t, "Jaipur", result.Itinerary.City)
	})

	t.Run("non-JSON output falls back to raw text", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		llm := &MockLLMRepository{}

		placeRepo.On("ListByCity", ctx, "Jaipur", []string(nil)).Return([]domain.Place{
			ratedPlace("Hawa Mahal", "Palace", 4.7),
		}, nil)

		llm.On("Chat", ctx, mock.Anything, mock.Anything).Return(
			"Day 1: start at Hawa Mahal in the morning...", nil)

		uc := usecase.NewItineraryUseCase(placeRepo, llm, nil, logger)

		result, err := uc.Generate(ctx, itineraryRequest())

		require.NoError(t, err)
		assert.False(t, result.Parsed)
		assert.Nil(t, result.Itinerary)
		assert.Contains(t, result.RawOutput, "Hawa Mahal")
	})

	t.Run("unknown city returns not found", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		llm := &MockLLMRepository{}

		placeRepo.On("ListByCity", ctx, "Jaipur", []string(nil)).Return([]domain.Place{}, nil)

		uc := usecase.NewItineraryUseCase(placeRepo, llm, nil, logger)

		result, err := uc.Generate(ctx, itineraryRequest())

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, apperrors.ErrCityNotFound))
		llm.AssertNotCalled(t, "Chat", ctx, mock.Anything, mock.Anything)
	})

	t.Run("model failure maps to a generation error", func(t *testing.T) {
		placeRepo := &MockPlaceRepository{}
		llm := &MockLLMRepository{}

		placeRepo.On("ListByCity", ctx, "Jaipur", []string(nil)).Return([]domain.Place{
			ratedPlace("Hawa Mahal", "Palace", 4.7),
		}, nil)

		llm.On("Chat", ctx, mock.Anything, mock.Anything).Return("", errors.New("connection refused"))

		uc := usecase.NewItineraryUseCase(placeRepo, llm, nil, logger)

		result, err := uc.Generate(ctx, itineraryRequest())

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, apperrors.ErrGenerationFailed))
	})
}

func TestItineraryUseCase_Enqueue(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("publishes the generate event and returns a request id", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		streamRepo.On("PublishToStream", ctx, domain.StreamItineraryGenerate, mock.Anything).Return(nil)

		uc := usecase.NewItineraryUseCase(&MockPlaceRepository{}, &MockLLMRepository{}, streamRepo, logger)

		resp, err := uc.Enqueue(ctx, itineraryRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.RequestID)
		assert.Equal(t, "queued", resp.Status)

		event := streamRepo.Calls[0].Arguments.Get(2).(domain.ItineraryGenerateEvent)
		assert.Equal(t, "Jaipur", event.City)
		assert.Equal(t, 2, event.TripDays)
		streamRepo.AssertExpectations(t)
	})

	t.Run("publish failure is propagated", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		streamRepo.On("PublishToStream", ctx, domain.StreamItineraryGenerate, mock.Anything).
			Return(errors.New("redis down"))

		uc := usecase.NewItineraryUseCase(&MockPlaceRepository{}, &MockLLMRepository{}, streamRepo, logger)

		resp, err := uc.Enqueue(ctx, itineraryRequest())

		require.Error(t, err)
		assert.Nil(t, resp)
	})
}
