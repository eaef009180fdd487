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

type EmployeeController struct {
	employeeService *services.EmployeeService
	logger          *zap.Logger
}

func NewEmployeeController(employeeService *services.EmployeeService, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		logger:          logger,
	}
}

func (c *EmployeeController) GetEmployees(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, totalCount, err := c.employeeService.GetEmployees(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка сотрудников", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудники успешно получены", http.StatusOK, totalCount)
}

func (c *EmployeeController) FindEmployee(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID"), c.logger)
	}

	res, err := c.employeeService.FindEmployee(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудник успешно получен", http.StatusOK)
}

func (c *EmployeeController) CreateEmployee(ctx echo.Context) error {
	var payload dto.CreateEmployeeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.employeeService.CreateEmployee(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудник успешно создан", http.StatusCreated)
}

func (c *EmployeeController) UpdateEmployee(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID"), c.logger)
	}

	var payload dto.UpdateEmployeeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.employeeService.UpdateEmployee(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудник успешно обновлён", http.StatusOK)
}

func (c *EmployeeController) DeleteEmployee(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID"), c.logger)
	}

	if err := c.employeeService.DeleteEmployee(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Сотрудник успешно удалён", http.StatusOK)
}
