package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/services"
	"equipment-system/pkg/utils"
)

type ActivityLogController struct {
	activityService *services.ActivityLogService
	logger          *zap.Logger
}

func NewActivityLogController(activityService *services.ActivityLogService, logger *zap.Logger) *ActivityLogController {
	return &ActivityLogController{
		activityService: activityService,
		logger:          logger,
	}
}

func (c *ActivityLogController) GetActivityLogs(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, totalCount, err := c.activityService.GetActivityLogs(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении журнала действий", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Журнал действий успешно получен", http.StatusOK, totalCount)
}
