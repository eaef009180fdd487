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

type CategoryController struct {
	categoryService *services.CategoryService
	logger          *zap.Logger
}

func NewCategoryController(categoryService *services.CategoryService, logger *zap.Logger) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		logger:          logger,
	}
}

func (c *CategoryController) GetCategories(ctx echo.Context) error {
	res, err := c.categoryService.GetCategories(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Категории успешно получены", http.StatusOK)
}

func (c *CategoryController) FindCategory(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID"), c.logger)
	}

	res, err := c.categoryService.FindCategory(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Категория успешно получена", http.StatusOK)
}

func (c *CategoryController) CreateCategory(ctx echo.Context) error {
	var payload dto.CreateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.categoryService.CreateCategory(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Категория успешно создана", http.StatusCreated)
}

func (c *CategoryController) UpdateCategory(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID"), c.logger)
	}

	var payload dto.UpdateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.categoryService.UpdateCategory(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Категория успешно обновлена", http.StatusOK)
}

func (c *CategoryController) DeleteCategory(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID"), c.logger)
	}

	if err := c.categoryService.DeleteCategory(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Категория успешно удалена", http.StatusOK)
}
