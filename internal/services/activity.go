package services

import (
	"context"

	"go.uber.org/zap"

	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"
	"equipment-system/pkg/types"
)

type ActivityLogService struct {
	activityRepository repositories.ActivityLogRepositoryInterface
	logger             *zap.Logger
}

func NewActivityLogService(activityRepository repositories.ActivityLogRepositoryInterface, logger *zap.Logger) *ActivityLogService {
	return &ActivityLogService{
		activityRepository: activityRepository,
		logger:             logger,
	}
}

func (s *ActivityLogService) GetActivityLogs(ctx context.Context, filter types.Filter) ([]entities.ActivityLog, uint64, error) {
	return s.activityRepository.GetActivityLogs(ctx, filter)
}
