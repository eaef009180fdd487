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
	"equipment-system/pkg/constants"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/types"
)

const equipmentTable = "equipments"

// ЕДИНАЯ КАРТА ПОЛЕЙ (Фильтр + Сортировка)
var equipmentMap = map[string]string{
	"id":            "e.id",
	"name":          "e.name",
	"brand":         "e.brand",
	"model":         "e.model",
	"serial_number": "e.serial_number",
	"asset_tag":     "e.asset_tag",
	"status":        "e.status",
	"condition":     "e.condition",
	"category_id":   "e.category_id",
	"created_at":    "e.created_at",
	"updated_at":    "e.updated_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) error
	DeleteEquipment(ctx context.Context, id uint64) error
	CountActiveTransactions(ctx context.Context, equipmentID uint64) (uint64, error)
	// ChangeStatus — compare-and-swap статуса: UPDATE срабатывает только если
	// текущий статус равен ожидаемому. Возвращает ErrEquipmentUnavailable при промахе.
	ChangeStatus(ctx context.Context, q Querier, id uint64, expected, next string) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

// -----------------------------------------------------------
// SCAN
// -----------------------------------------------------------

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var c entities.Category

	err := row.Scan(
		&e.ID, &e.Name, &e.Brand, &e.Model, &e.SerialNumber, &e.AssetTag,
		&e.Status, &e.Condition, &e.CategoryID,
		&e.CreatedAt, &e.UpdatedAt,
		&c.ID, &c.Name,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования equipment: %w", err)
	}

	if c.ID > 0 {
		e.Category = &c
	}

	return &e, nil
}

var equipmentSelectColumns = []string{
	"e.id", "e.name", "e.brand", "e.model", "e.serial_number", "e.asset_tag",
	"e.status", "e.condition", "e.category_id",
	"e.created_at", "e.updated_at",
	"COALESCE(c.id, 0)", "COALESCE(c.name, '')",
}

// -----------------------------------------------------------
// GET (Список)
// -----------------------------------------------------------
func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"e.name": pat},
				sq.ILike{"e.brand": pat},
				sq.ILike{"e.model": pat},
				sq.ILike{"e.serial_number": pat},
			})
		}
		return b
	}

	// 1. COUNT
	countBuilder := psql.Select("COUNT(e.id)").From(equipmentTable + " AS e")
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, equipmentMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	// 2. SELECT
	baseBuilder := psql.Select(equipmentSelectColumns...).
		From(equipmentTable + " AS e").
		LeftJoin("categories c ON e.category_id = c.id")

	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("e.id DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, equipmentMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	equipments := make([]entities.Equipment, 0, filter.Limit)
	for rows.Next() {
		equipment, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		equipments = append(equipments, *equipment)
	}

	return equipments, total, nil
}

// -----------------------------------------------------------
// FIND ONE
// -----------------------------------------------------------
func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := psql.Select(equipmentSelectColumns...).
		From(equipmentTable + " AS e").
		LeftJoin("categories c ON e.category_id = c.id").
		Where(sq.Eq{"e.id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

// -----------------------------------------------------------
// CREATE / UPDATE / DELETE
// -----------------------------------------------------------
func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (uint64, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (name, brand, model, serial_number, asset_tag, status, condition, category_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `, equipmentTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		equipment.Name,
		equipment.Brand,
		equipment.Model,
		equipment.SerialNumber,
		equipment.AssetTag,
		constants.EquipmentStatusAvailable,
		equipment.Condition,
		equipment.CategoryID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET name = $1, brand = $2, model = $3, serial_number = $4, asset_tag = $5,
            status = $6, condition = $7, category_id = $8, updated_at = CURRENT_TIMESTAMP
        WHERE id = $9
    `, equipmentTable)

	result, err := r.storage.Exec(ctx, query,
		equipment.Name,
		equipment.Brand,
		equipment.Model,
		equipment.SerialNumber,
		equipment.AssetTag,
		equipment.Status,
		equipment.Condition,
		equipment.CategoryID,
		id,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *EquipmentRepository) CountActiveTransactions(ctx context.Context, equipmentID uint64) (uint64, error) {
	var count uint64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE equipment_id = $1 AND status IN ($2, $3)`,
		equipmentID, constants.TransactionStatusPending, constants.TransactionStatusReleased,
	).Scan(&count)
	return count, err
}

// -----------------------------------------------------------
// STATUS (compare-and-swap)
// -----------------------------------------------------------
func (r *EquipmentRepository) ChangeStatus(ctx context.Context, q Querier, id uint64, expected, next string) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET status = $1, updated_at = CURRENT_TIMESTAMP
        WHERE id = $2 AND status = $3
    `, equipmentTable)

	result, err := q.Exec(ctx, query, next, id, expected)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		// Либо записи нет, либо статус уже не тот, что ожидался.
		var exists bool
		if err := q.QueryRow(ctx, fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", equipmentTable), id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrEquipmentUnavailable
	}

	return nil
}
