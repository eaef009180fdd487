package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/services"
	"equipment-system/pkg/utils"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(dashboardService *services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (c *DashboardController) GetSummary(ctx echo.Context) error {
	res, err := c.dashboardService.GetSummary(ctx.Request().Context())
	if err != nil {
		c.logger.Error("Ошибка при получении сводки", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сводка успешно получена", http.StatusOK)
}
