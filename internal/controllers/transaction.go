package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/services"
	"equipment-system/pkg/utils"
)

type TransactionController struct {
	transactionService *services.TransactionService
	logger             *zap.Logger
}

func NewTransactionController(transactionService *services.TransactionService, logger *zap.Logger) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
		logger:             logger,
	}
}

func (c *TransactionController) GetTransactions(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, totalCount, err := c.transactionService.GetTransactions(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка операций выдачи", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Операции выдачи успешно получены", http.StatusOK, totalCount)
}

func (c *TransactionController) FindTransaction(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID"), c.logger)
	}

	res, err := c.transactionService.FindTransaction(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Операция выдачи успешно получена", http.StatusOK)
}

func (c *TransactionController) ReleaseTransaction(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID"), c.logger)
	}

	var payload dto.ReleaseTransactionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.transactionService.ReleaseTransaction(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование выдано", http.StatusOK)
}

func (c *TransactionController) UpdateTransactionStatus(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID"), c.logger)
	}

	var payload dto.UpdateTransactionStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.transactionService.UpdateTransactionStatus(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Статус операции обновлён", http.StatusOK)
}
