package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-recommender/internal/pkg/utils"
	"github.com/trip-recommender/internal/pkg/validator"
	"github.com/trip-recommender/internal/usecase"
	"github.com/trip-recommender/internal/usecase/dto"
)

// PlaceHandler - обработчик запросов достопримечательностей
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// CityPlaces godoc
// @Summary Достопримечательности города
// @Description Возвращает места города из каталога, отсортированные по рейтингу. Опционально фильтрует по типам мест.
// @Tags Places
// @Accept json
// @Produce json
// @Param request body dto.CityPlacesRequest true "Город и опциональные типы мест"
// @Success 200 {object} utils.SuccessResponse{data=dto.CityPlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/city-places [post]
func (h *PlaceHandler) CityPlaces(c *fiber.Ctx) error {
	var req dto.CityPlacesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.placeUC.CityPlaces(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Places),
	})
}
