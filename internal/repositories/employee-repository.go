package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"equipment-system/internal/entities"
	"equipment-system/internal/infrastructure/bd"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/types"
)

const employeeTable = "employees"

var employeeMap = map[string]string{
	"id":         "emp.id",
	"fio":        "emp.fio",
	"email":      "emp.email",
	"department": "emp.department",
	"position":   "emp.position",
	"created_at": "emp.created_at",
}

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error)
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, employee entities.Employee) (uint64, error)
	UpdateEmployee(ctx context.Context, id uint64, employee entities.Employee) error
	DeleteEmployee(ctx context.Context, id uint64) error
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEmployeeRepository(storage *pgxpool.Pool, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage, logger: logger}
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(&e.ID, &e.Fio, &e.Email, &e.Department, &e.Position, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepository) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"emp.fio": pat},
				sq.ILike{"emp.email": pat},
				sq.ILike{"emp.department": pat},
			})
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(emp.id)").From(employeeTable + " AS emp"))
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, employeeMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Employee{}, 0, nil
	}

	baseBuilder := applySearch(psql.Select(
		"emp.id", "emp.fio", "emp.email", "emp.department", "emp.position", "emp.created_at", "emp.updated_at",
	).From(employeeTable + " AS emp"))

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("emp.id DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, employeeMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0, filter.Limit)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, *employee)
	}

	return employees, total, nil
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	query := fmt.Sprintf(`
		SELECT id, fio, email, department, position, created_at, updated_at
		FROM %s WHERE id = $1
	`, employeeTable)
	return scanEmployee(r.storage.QueryRow(ctx, query, id))
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, employee entities.Employee) (uint64, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (fio, email, department, position)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, employeeTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		employee.Fio, employee.Email, employee.Department, employee.Position,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, id uint64, employee entities.Employee) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET fio = $1, email = $2, department = $3, position = $4, updated_at = CURRENT_TIMESTAMP
        WHERE id = $5
    `, employeeTable)

	result, err := r.storage.Exec(ctx, query,
		employee.Fio, employee.Email, employee.Department, employee.Position, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id uint64) error {
	// Каскад на requests/transactions обеспечивается внешними ключами.
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", employeeTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
