package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"equipment-system/internal/entities"
	"equipment-system/internal/infrastructure/bd"
	"equipment-system/pkg/constants"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/types"
)

const requestTable = "requests"

// ЕДИНАЯ КАРТА ПОЛЕЙ (Фильтр + Сортировка)
var requestMap = map[string]string{
	"id":             "r.id",
	"request_number": "r.request_number",
	"status":         "r.status",
	"employee_id":    "r.employee_id",
	"equipment_id":   "r.equipment_id",
	"request_type":   "r.request_type",
	"request_mode":   "r.request_mode",
	"equipment_type": "eq.category_id",
	"requested_date": "r.requested_date",
	"created_at":     "r.created_at",
	"updated_at":     "r.updated_at",
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.Request, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*entities.Request, error)
	FindRequestForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Request, error)
	HasPendingRequest(ctx context.Context, employeeID, equipmentID uint64) (bool, error)
	CreateRequestInTx(ctx context.Context, q Querier, request entities.Request) (uint64, error)
	UpdateRequest(ctx context.Context, id uint64, request entities.Request) error
	DeleteRequest(ctx context.Context, id uint64) error
	ApproveInTx(ctx context.Context, tx pgx.Tx, id uint64, approvedBy uint64, notes string) error
	Reject(ctx context.Context, id uint64, rejectedBy uint64, reason string) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

// -----------------------------------------------------------
// SCAN
// -----------------------------------------------------------

var requestSelectColumns = []string{
	"r.id", "r.request_number", "r.employee_id", "r.equipment_id",
	"r.request_type", "r.request_mode", "r.status", "r.reason",
	"r.requested_date", "r.expected_start_date", "r.expected_end_date",
	"r.approved_by", "r.approved_at", "r.approval_notes", "r.rejection_reason",
	"r.created_at", "r.updated_at",
	"COALESCE(emp.id, 0)", "COALESCE(emp.fio, '')",
	"COALESCE(eq.id, 0)", "COALESCE(eq.name, '')", "COALESCE(eq.status, '')",
}

func scanRequest(row pgx.Row) (*entities.Request, error) {
	var r entities.Request
	var emp entities.Employee
	var eq entities.Equipment

	err := row.Scan(
		&r.ID, &r.RequestNumber, &r.EmployeeID, &r.EquipmentID,
		&r.RequestType, &r.RequestMode, &r.Status, &r.Reason,
		&r.RequestedDate, &r.ExpectedStartDate, &r.ExpectedEndDate,
		&r.ApprovedBy, &r.ApprovedAt, &r.ApprovalNotes, &r.RejectionReason,
		&r.CreatedAt, &r.UpdatedAt,
		&emp.ID, &emp.Fio,
		&eq.ID, &eq.Name, &eq.Status,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования request: %w", err)
	}

	if emp.ID > 0 {
		r.Employee = &emp
	}
	if eq.ID > 0 {
		r.Equipment = &eq
	}

	return &r, nil
}

// -----------------------------------------------------------
// GET (Список)
// -----------------------------------------------------------
func (r *RequestRepository) GetRequests(ctx context.Context, filter types.Filter) ([]entities.Request, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"r.request_number": pat},
				sq.ILike{"emp.fio": pat},
				sq.ILike{"eq.name": pat},
			})
		}
		return b
	}

	joins := func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.
			LeftJoin("employees emp ON r.employee_id = emp.id").
			LeftJoin("equipments eq ON r.equipment_id = eq.id")
	}

	// 1. COUNT
	countBuilder := joins(psql.Select("COUNT(r.id)").From(requestTable + " AS r"))
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, requestMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Request{}, 0, nil
	}

	// 2. SELECT
	baseBuilder := joins(psql.Select(requestSelectColumns...).From(requestTable + " AS r"))
	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("r.id DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, requestMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests := make([]entities.Request, 0, filter.Limit)
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, *request)
	}

	return requests, total, nil
}

// -----------------------------------------------------------
// FIND ONE
// -----------------------------------------------------------
func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := psql.Select(requestSelectColumns...).
		From(requestTable + " AS r").
		LeftJoin("employees emp ON r.employee_id = emp.id").
		LeftJoin("equipments eq ON r.equipment_id = eq.id").
		Where(sq.Eq{"r.id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return scanRequest(r.storage.QueryRow(ctx, query, args...))
}

// FindRequestForUpdateInTx блокирует строку заявки на время транзакции согласования.
func (r *RequestRepository) FindRequestForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Request, error) {
	query := fmt.Sprintf(`
		SELECT id, request_number, employee_id, equipment_id, request_type, request_mode,
		       status, reason, requested_date, expected_start_date, expected_end_date,
		       approved_by, approved_at, approval_notes, rejection_reason, created_at, updated_at
		FROM %s
		WHERE id = $1
		FOR UPDATE
	`, requestTable)

	var req entities.Request
	err := tx.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.RequestNumber, &req.EmployeeID, &req.EquipmentID,
		&req.RequestType, &req.RequestMode, &req.Status, &req.Reason,
		&req.RequestedDate, &req.ExpectedStartDate, &req.ExpectedEndDate,
		&req.ApprovedBy, &req.ApprovedAt, &req.ApprovalNotes, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &req, nil
}

func (r *RequestRepository) HasPendingRequest(ctx context.Context, employeeID, equipmentID uint64) (bool, error) {
	var exists bool
	err := r.storage.QueryRow(ctx,
		fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE employee_id = $1 AND equipment_id = $2 AND status = $3)`, requestTable),
		employeeID, equipmentID, constants.RequestStatusPending,
	).Scan(&exists)
	return exists, err
}

// -----------------------------------------------------------
// CREATE / UPDATE / DELETE
// -----------------------------------------------------------
func (r *RequestRepository) CreateRequestInTx(ctx context.Context, q Querier, request entities.Request) (uint64, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (request_number, employee_id, equipment_id, request_type, request_mode,
                        status, reason, requested_date, expected_start_date, expected_end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `, requestTable)

	var id uint64
	err := q.QueryRow(ctx, query,
		request.RequestNumber,
		request.EmployeeID,
		request.EquipmentID,
		request.RequestType,
		request.RequestMode,
		constants.RequestStatusPending,
		request.Reason,
		request.RequestedDate,
		request.ExpectedStartDate,
		request.ExpectedEndDate,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, id uint64, request entities.Request) error {
	// Обновляются только поля, разрешённые для pending-заявки.
	query := fmt.Sprintf(`
        UPDATE %s
        SET request_type = $1, request_mode = $2, reason = $3,
            expected_start_date = $4, expected_end_date = $5, updated_at = CURRENT_TIMESTAMP
        WHERE id = $6 AND status = $7
    `, requestTable)

	result, err := r.storage.Exec(ctx, query,
		request.RequestType,
		request.RequestMode,
		request.Reason,
		request.ExpectedStartDate,
		request.ExpectedEndDate,
		id,
		constants.RequestStatusPending,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return r.notFoundOrNotModifiable(ctx, id)
	}
	return nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND status = $2", requestTable),
		id, constants.RequestStatusPending,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return r.notFoundOrNotModifiable(ctx, id)
	}
	return nil
}

// -----------------------------------------------------------
// ПЕРЕХОДЫ СТАТУСОВ
// -----------------------------------------------------------
func (r *RequestRepository) ApproveInTx(ctx context.Context, tx pgx.Tx, id uint64, approvedBy uint64, notes string) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET status = $1, approved_by = $2, approved_at = CURRENT_TIMESTAMP,
            approval_notes = $3, updated_at = CURRENT_TIMESTAMP
        WHERE id = $4 AND status = $5
    `, requestTable)

	result, err := tx.Exec(ctx, query,
		constants.RequestStatusApproved,
		approvedBy,
		null.NewString(notes, notes != ""),
		id,
		constants.RequestStatusPending,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrInvalidState
	}
	return nil
}

func (r *RequestRepository) Reject(ctx context.Context, id uint64, rejectedBy uint64, reason string) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET status = $1, approved_by = $2, approved_at = CURRENT_TIMESTAMP,
            rejection_reason = $3, updated_at = CURRENT_TIMESTAMP
        WHERE id = $4 AND status = $5
    `, requestTable)

	result, err := r.storage.Exec(ctx, query,
		constants.RequestStatusRejected,
		rejectedBy,
		reason,
		id,
		constants.RequestStatusPending,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return r.invalidStateOrNotFound(ctx, id)
	}
	return nil
}

func (r *RequestRepository) notFoundOrNotModifiable(ctx context.Context, id uint64) error {
	var exists bool
	if err := r.storage.QueryRow(ctx,
		fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", requestTable), id,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrRequestNotModifiable
}

func (r *RequestRepository) invalidStateOrNotFound(ctx context.Context, id uint64) error {
	var exists bool
	if err := r.storage.QueryRow(ctx,
		fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", requestTable), id,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrInvalidState
}
