package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/repositories"
	apperrors "equipment-system/pkg/errors"
)

const dashboardSummaryCacheKey = "dashboard:summary"

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	cacheRepository     repositories.CacheRepositoryInterface
	cacheTTL            time.Duration
	logger              *zap.Logger
}

func NewDashboardService(
	dashboardRepository repositories.DashboardRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		dashboardRepository: dashboardRepository,
		cacheRepository:     cacheRepository,
		cacheTTL:            cacheTTL,
		logger:              logger,
	}
}

// GetSummary отдаёт сводку из кэша; при промахе считает по БД и кэширует.
// Недоступность Redis не роняет запрос, только логируется.
func (s *DashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var cached dto.DashboardSummaryDTO
	err := s.cacheRepository.Get(ctx, dashboardSummaryCacheKey, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("Кэш сводки недоступен, читаем из БД", zap.Error(err))
	}

	summary, err := s.dashboardRepository.GetSummary(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepository.Set(ctx, dashboardSummaryCacheKey, summary, s.cacheTTL); err != nil {
		s.logger.Warn("Не удалось записать сводку в кэш", zap.Error(err))
	}

	return summary, nil
}
