package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-recommender/internal/pkg/utils"
	"github.com/trip-recommender/internal/pkg/validator"
	"github.com/trip-recommender/internal/usecase"
	"github.com/trip-recommender/internal/usecase/dto"
)

// RecommendHandler - обработчик подбора городов
type RecommendHandler struct {
	recommendUC *usecase.RecommendUseCase
	logger      *zap.Logger
}

// NewRecommendHandler - создание нового RecommendHandler
func NewRecommendHandler(recommendUC *usecase.RecommendUseCase, logger *zap.Logger) *RecommendHandler {
	return &RecommendHandler{
		recommendUC: recommendUC,
		logger:      logger,
	}
}

// RecommendCities godoc
// @Summary Подбор городов под длительность поездки
// @Description Геокодирует точку старта, считает достижимую дистанцию из бюджета времени поездки и возвращает до 5 городов в дистанционной полосе вокруг цели.
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest true "Параметры поездки"
// @Success 200 {object} utils.SuccessResponse{data=dto.RecommendResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/recommend-cities [post]
func (h *RecommendHandler) RecommendCities(c *fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.recommendUC.Recommend(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.RecommendedCities),
	})
}
