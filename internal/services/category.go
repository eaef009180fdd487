package services

import (
	"context"

	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"
)

type CategoryService struct {
	categoryRepository repositories.CategoryRepositoryInterface
	logger             *zap.Logger
}

func NewCategoryService(categoryRepository repositories.CategoryRepositoryInterface, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]entities.Category, error) {
	return s.categoryRepository.GetCategories(ctx)
}

func (s *CategoryService) FindCategory(ctx context.Context, id uint64) (*entities.Category, error) {
	return s.categoryRepository.FindCategory(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*entities.Category, error) {
	id, err := s.categoryRepository.CreateCategory(ctx, entities.Category{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		return nil, err
	}
	return s.categoryRepository.FindCategory(ctx, id)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*entities.Category, error) {
	category, err := s.categoryRepository.FindCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		category.Name = *payload.Name
	}
	if payload.Description != nil {
		category.Description = *payload.Description
	}

	if err := s.categoryRepository.UpdateCategory(ctx, id, *category); err != nil {
		return nil, err
	}
	return s.categoryRepository.FindCategory(ctx, id)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint64) error {
	return s.categoryRepository.DeleteCategory(ctx, id)
}
