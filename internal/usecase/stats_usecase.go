package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/trip-recommender/internal/domain"
	"github.com/trip-recommender/internal/domain/repository"
)

// StatsUseCase - статистика по загруженному каталогу
type StatsUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

func NewStatsUseCase(placeRepo repository.PlaceRepository, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.CatalogStats, error) {
	stats, err := uc.placeRepo.Stats(ctx)
	if err != nil {
		uc.logger.Error("Failed to get catalog statistics", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
