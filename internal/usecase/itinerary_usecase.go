package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trip-recommender/internal/domain"
	"github.com/trip-recommender/internal/domain/repository"
	apperrors "github.com/trip-recommender/internal/pkg/errors"
	"github.com/trip-recommender/internal/usecase/dto"
)

const topPlacesForItinerary = 10

const itinerarySystemPrompt = `You are an expert travel planner. ` +
	`You respond with strictly valid JSON and nothing else: no prose, no markdown. ` +
	`The JSON object has the shape {"city": string, "days": [{"day": int, "theme": string, ` +
	`"visits": [{"place": string, "time": string, "notes": string, "duration": string}]}]}.`

// ItineraryUseCase - генерация маршрута по городу через LLM
type ItineraryUseCase struct {
	placeRepo  repository.PlaceRepository
	llm        repository.LLMRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewItineraryUseCase(
	placeRepo repository.PlaceRepository,
	llm repository.LLMRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *ItineraryUseCase {
	return &ItineraryUseCase{
		placeRepo:  placeRepo,
		llm:        llm,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Generate строит маршрут по топ-местам города.
// Если модель вернула невалидный JSON, ответ отдаётся как сырой текст с Parsed=false.
func (uc *ItineraryUseCase) Generate(ctx context.Context, req dto.ItineraryRequest) (*domain.ItineraryResult, error) {
	places, err := uc.placeRepo.ListByCity(ctx, req.City, nil)
	if err != nil {
		uc.logger.Error("Failed to list places for itinerary", zap.String("city", req.City), zap.Error(err))
		return nil, err
	}
	if len(places) == 0 {
		return nil, apperrors.ErrCityNotFound.WithDetails(map[string]interface{}{
			"city": req.City,
		})
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Rating > places[j].Rating
	})
	if len(places) > topPlacesForItinerary {
		places = places[:topPlacesForItinerary]
	}

	userPrompt := buildItineraryPrompt(req, places)

	content, err := uc.llm.Chat(ctx, itinerarySystemPrompt, userPrompt)
	if err != nil {
		uc.logger.Error("LLM request failed", zap.String("city", req.City), zap.Error(err))
		return nil, apperrors.ErrGenerationFailed.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}

	var itinerary domain.Itinerary
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &itinerary); err != nil {
		uc.logger.Warn("LLM output is not valid JSON, returning raw text",
			zap.String("city", req.City), zap.Error(err))
		return &domain.ItineraryResult{RawOutput: content, Parsed: false}, nil
	}

	return &domain.ItineraryResult{Itinerary: &itinerary, Parsed: true}, nil
}

// Enqueue ставит генерацию маршрута в очередь и возвращает идентификатор запроса
func (uc *ItineraryUseCase) Enqueue(ctx context.Context, req dto.ItineraryRequest) (*dto.ItineraryQueuedResponse, error) {
	event := domain.ItineraryGenerateEvent{
		RequestID:      uuid.New(),
		City:           req.City,
		TripDays:       req.TripDays,
		ArrivalInfo:    req.ArrivalInfo,
		PreferredTypes: req.PreferredTypes,
		Group:          req.Group,
		Pace:           req.Pace,
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamItineraryGenerate, event); err != nil {
		uc.logger.Error("Failed to enqueue itinerary generation",
			zap.String("city", req.City), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Itinerary generation enqueued",
		zap.String("request_id", event.RequestID.String()),
		zap.String("city", req.City))

	return &dto.ItineraryQueuedResponse{
		RequestID: event.RequestID.String(),
		Status:    "queued",
	}, nil
}

func buildItineraryPrompt(req dto.ItineraryRequest, places []domain.Place) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Plan a %d-day trip to %s.\n", req.TripDays, req.City)
	fmt.Fprintf(&sb, "Arrival: %s.\n", req.ArrivalInfo)
	fmt.Fprintf(&sb, "Travellers: %s, pace: %s.\n", req.Group, req.Pace)
	if len(req.PreferredTypes) > 0 {
		fmt.Fprintf(&sb, "Preferred place types: %s.\n", strings.Join(req.PreferredTypes, ", "))
	}

	sb.WriteString("Top rated places in the city:\n")
	for _, p := range places {
		fmt.Fprintf(&sb, "- %s (%s, %.1f hours to visit, rating %.1f)\n",
			p.Name, p.Type, p.VisitHours, p.Rating)
	}

	sb.WriteString("Use only places from this list. Respond with the JSON object only.")
	return sb.String()
}

// stripCodeFence снимает обёртку ```json ... ```, которую модели любят добавлять
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
