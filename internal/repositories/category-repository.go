package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"equipment-system/internal/entities"
	apperrors "equipment-system/pkg/errors"
)

const categoryTable = "categories"

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context) ([]entities.Category, error)
	FindCategory(ctx context.Context, id uint64) (*entities.Category, error)
	CreateCategory(ctx context.Context, category entities.Category) (uint64, error)
	UpdateCategory(ctx context.Context, id uint64, category entities.Category) error
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryRepository struct {
	storage *pgxpool.Pool
}

func NewCategoryRepository(storage *pgxpool.Pool) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage}
}

func (r *CategoryRepository) GetCategories(ctx context.Context) ([]entities.Category, error) {
	rows, err := r.storage.Query(ctx,
		fmt.Sprintf("SELECT id, name, description, created_at, updated_at FROM %s ORDER BY name", categoryTable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]entities.Category, 0)
	for rows.Next() {
		var c entities.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) FindCategory(ctx context.Context, id uint64) (*entities.Category, error) {
	var c entities.Category
	err := r.storage.QueryRow(ctx,
		fmt.Sprintf("SELECT id, name, description, created_at, updated_at FROM %s WHERE id = $1", categoryTable), id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category entities.Category) (uint64, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		fmt.Sprintf("INSERT INTO %s (name, description) VALUES ($1, $2) RETURNING id", categoryTable),
		category.Name, category.Description,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, id uint64, category entities.Category) error {
	result, err := r.storage.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET name = $1, description = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3", categoryTable),
		category.Name, category.Description, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", categoryTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
