package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-recommender/internal/pkg/utils"
	"github.com/trip-recommender/internal/pkg/validator"
	"github.com/trip-recommender/internal/usecase"
	"github.com/trip-recommender/internal/usecase/dto"
)

// ItineraryHandler - обработчик генерации маршрутов
type ItineraryHandler struct {
	itineraryUC *usecase.ItineraryUseCase
	logger      *zap.Logger
}

// NewItineraryHandler - создание нового ItineraryHandler
func NewItineraryHandler(itineraryUC *usecase.ItineraryUseCase, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: itineraryUC,
		logger:      logger,
	}
}

// Generate godoc
// @Summary Генерация маршрута по городу
// @Description Строит детальный маршрут по топ-местам города через LLM. Если модель вернула невалидный JSON, ответ содержит сырой текст и parsed=false.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body dto.ItineraryRequest true "Параметры маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.ItineraryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/itinerary [post]
func (h *ItineraryHandler) Generate(c *fiber.Ctx) error {
	var req dto.ItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.itineraryUC.Generate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ItineraryResponse{
		City:      req.City,
		Itinerary: result.Itinerary,
		RawOutput: result.RawOutput,
		Parsed:    result.Parsed,
	}, nil)
}

// GenerateAsync godoc
// @Summary Поставить генерацию маршрута в очередь
// @Description Публикует запрос в Redis Stream и сразу возвращает идентификатор. Результат публикуется воркером в стрим готовых маршрутов.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body dto.ItineraryRequest true "Параметры маршрута"
// @Success 202 {object} utils.SuccessResponse{data=dto.ItineraryQueuedResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/async [post]
func (h *ItineraryHandler) GenerateAsync(c *fiber.Ctx) error {
	var req dto.ItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.itineraryUC.Enqueue(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(utils.SuccessResponse{Data: result})
}
