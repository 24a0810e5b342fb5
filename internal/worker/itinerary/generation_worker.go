package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/trip-recommender/internal/domain"
	"github.com/trip-recommender/internal/domain/repository"
	"github.com/trip-recommender/internal/usecase"
	"github.com/trip-recommender/internal/usecase/dto"
	"github.com/trip-recommender/internal/worker"
)

// GenerationWorker обрабатывает очередь запросов на генерацию маршрутов.
// Читает события из стрима запросов, генерирует маршрут через usecase
// и публикует результат в стрим готовых маршрутов.
type GenerationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	itineraryUC  *usecase.ItineraryUseCase
	consumerName string
}

// NewGenerationWorker создает новый GenerationWorker
func NewGenerationWorker(
	streamRepo repository.StreamRepository,
	itineraryUC *usecase.ItineraryUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *GenerationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &GenerationWorker{
		BaseWorker:   worker.NewBaseWorker("itinerary-generation", consumerGroup, logger),
		streamRepo:   streamRepo,
		itineraryUC:  itineraryUC,
		consumerName: consumerName,
	}
}

// Start запускает цикл обработки событий генерации
func (w *GenerationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting itinerary generation worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamItineraryGenerate, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamItineraryGenerate, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage обрабатывает одно событие генерации; сообщение всегда
// подтверждается, чтобы битые или несгенерированные запросы не застревали
func (w *GenerationWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.ItineraryGenerateEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse generate event, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	logger.Info("Generating itinerary",
		zap.String("request_id", event.RequestID.String()),
		zap.String("city", event.City))

	result, err := w.itineraryUC.Generate(ctx, dto.ItineraryRequest{
		City:           event.City,
		TripDays:       event.TripDays,
		ArrivalInfo:    event.ArrivalInfo,
		PreferredTypes: event.PreferredTypes,
		Group:          event.Group,
		Pace:           event.Pace,
	})

	done := domain.ItineraryDoneEvent{
		RequestID: event.RequestID,
	}
	if err != nil {
		logger.Error("Itinerary generation failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		done.Error = err.Error()
	} else {
		done.Itinerary = result.Itinerary
		done.RawOutput = result.RawOutput
	}

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamItineraryDone, done); err != nil {
		logger.Error("Failed to publish done event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
	}

	w.ack(ctx, msg.ID)
}

func (w *GenerationWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamItineraryGenerate, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
