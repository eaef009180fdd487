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

const transactionTable = "transactions"

// ЕДИНАЯ КАРТА ПОЛЕЙ (Фильтр + Сортировка)
var transactionMap = map[string]string{
	"id":                 "t.id",
	"transaction_number": "t.transaction_number",
	"status":             "t.status",
	"request_id":         "t.request_id",
	"employee_id":        "t.employee_id",
	"equipment_id":       "t.equipment_id",
	"request_mode":       "t.request_mode",
	"release_date":       "t.release_date",
	"return_date":        "t.return_date",
	"created_at":         "t.created_at",
	"updated_at":         "t.updated_at",
}

type TransactionRepositoryInterface interface {
	GetTransactions(ctx context.Context, filter types.Filter) ([]entities.Transaction, uint64, error)
	FindTransaction(ctx context.Context, id uint64) (*entities.Transaction, error)
	FindTransactionForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Transaction, error)
	CreateTransactionInTx(ctx context.Context, q Querier, transaction entities.Transaction) (uint64, error)
	ReleaseInTx(ctx context.Context, tx pgx.Tx, id uint64, condition string, notes string, releasedBy uint64) error
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, newStatus string, ret ReturnFields) error
}

// ReturnFields — необязательные данные возврата. Исходный процесс
// не требует их заполнения, поэтому все поля nullable.
type ReturnFields struct {
	Condition  null.String
	Date       null.Time
	ReceivedBy null.Uint64
	Notes      null.String
}

type TransactionRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTransactionRepository(storage *pgxpool.Pool, logger *zap.Logger) TransactionRepositoryInterface {
	return &TransactionRepository{storage: storage, logger: logger}
}

// -----------------------------------------------------------
// SCAN
// -----------------------------------------------------------

var transactionSelectColumns = []string{
	"t.id", "t.transaction_number", "t.user_id", "t.employee_id", "t.equipment_id",
	"t.request_id", "t.status", "t.request_mode",
	"t.release_condition", "t.release_date", "t.released_by", "t.release_notes",
	"t.return_condition", "t.return_date", "t.received_by", "t.return_notes",
	"t.expected_return_date",
	"t.created_at", "t.updated_at",
	"COALESCE(emp.id, 0)", "COALESCE(emp.fio, '')",
	"COALESCE(eq.id, 0)", "COALESCE(eq.name, '')", "COALESCE(eq.status, '')",
}

func scanTransaction(row pgx.Row) (*entities.Transaction, error) {
	var t entities.Transaction
	var emp entities.Employee
	var eq entities.Equipment

	err := row.Scan(
		&t.ID, &t.TransactionNumber, &t.UserID, &t.EmployeeID, &t.EquipmentID,
		&t.RequestID, &t.Status, &t.RequestMode,
		&t.ReleaseCondition, &t.ReleaseDate, &t.ReleasedBy, &t.ReleaseNotes,
		&t.ReturnCondition, &t.ReturnDate, &t.ReceivedBy, &t.ReturnNotes,
		&t.ExpectedReturnDate,
		&t.CreatedAt, &t.UpdatedAt,
		&emp.ID, &emp.Fio,
		&eq.ID, &eq.Name, &eq.Status,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования transaction: %w", err)
	}

	if emp.ID > 0 {
		t.Employee = &emp
	}
	if eq.ID > 0 {
		t.Equipment = &eq
	}

	return &t, nil
}

// -----------------------------------------------------------
// GET (Список)
// -----------------------------------------------------------
func (r *TransactionRepository) GetTransactions(ctx context.Context, filter types.Filter) ([]entities.Transaction, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	joins := func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.
			LeftJoin("employees emp ON t.employee_id = emp.id").
			LeftJoin("equipments eq ON t.equipment_id = eq.id")
	}

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"t.transaction_number": pat},
				sq.ILike{"emp.fio": pat},
				sq.ILike{"eq.name": pat},
			})
		}
		return b
	}

	// 1. COUNT
	countBuilder := joins(psql.Select("COUNT(t.id)").From(transactionTable + " AS t"))
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, transactionMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Transaction{}, 0, nil
	}

	// 2. SELECT
	baseBuilder := joins(psql.Select(transactionSelectColumns...).From(transactionTable + " AS t"))
	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("t.id DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, transactionMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	transactions := make([]entities.Transaction, 0, filter.Limit)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, *transaction)
	}

	return transactions, total, nil
}

// -----------------------------------------------------------
// FIND ONE
// -----------------------------------------------------------
func (r *TransactionRepository) FindTransaction(ctx context.Context, id uint64) (*entities.Transaction, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := psql.Select(transactionSelectColumns...).
		From(transactionTable + " AS t").
		LeftJoin("employees emp ON t.employee_id = emp.id").
		LeftJoin("equipments eq ON t.equipment_id = eq.id").
		Where(sq.Eq{"t.id": id})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return scanTransaction(r.storage.QueryRow(ctx, query, args...))
}

// FindTransactionForUpdateInTx блокирует строку операции на время перехода статуса.
func (r *TransactionRepository) FindTransactionForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT id, transaction_number, user_id, employee_id, equipment_id, request_id,
		       status, request_mode,
		       release_condition, release_date, released_by, release_notes,
		       return_condition, return_date, received_by, return_notes,
		       expected_return_date, created_at, updated_at
		FROM %s
		WHERE id = $1
		FOR UPDATE
	`, transactionTable)

	var t entities.Transaction
	err := tx.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.TransactionNumber, &t.UserID, &t.EmployeeID, &t.EquipmentID, &t.RequestID,
		&t.Status, &t.RequestMode,
		&t.ReleaseCondition, &t.ReleaseDate, &t.ReleasedBy, &t.ReleaseNotes,
		&t.ReturnCondition, &t.ReturnDate, &t.ReceivedBy, &t.ReturnNotes,
		&t.ExpectedReturnDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// -----------------------------------------------------------
// CREATE
// -----------------------------------------------------------
func (r *TransactionRepository) CreateTransactionInTx(ctx context.Context, q Querier, transaction entities.Transaction) (uint64, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (transaction_number, user_id, employee_id, equipment_id, request_id,
                        status, request_mode, expected_return_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `, transactionTable)

	var id uint64
	err := q.QueryRow(ctx, query,
		transaction.TransactionNumber,
		transaction.UserID,
		transaction.EmployeeID,
		transaction.EquipmentID,
		transaction.RequestID,
		constants.TransactionStatusPending,
		transaction.RequestMode,
		transaction.ExpectedReturnDate,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// -----------------------------------------------------------
// ПЕРЕХОДЫ СТАТУСОВ
// -----------------------------------------------------------
func (r *TransactionRepository) ReleaseInTx(ctx context.Context, tx pgx.Tx, id uint64, condition string, notes string, releasedBy uint64) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET status = $1, release_condition = $2, release_date = CURRENT_TIMESTAMP,
            released_by = $3, release_notes = $4, updated_at = CURRENT_TIMESTAMP
        WHERE id = $5 AND status = $6
    `, transactionTable)

	result, err := tx.Exec(ctx, query,
		constants.TransactionStatusReleased,
		condition,
		releasedBy,
		null.NewString(notes, notes != ""),
		id,
		constants.TransactionStatusPending,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrInvalidState
	}
	return nil
}

func (r *TransactionRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, newStatus string, ret ReturnFields) error {
	query := fmt.Sprintf(`
        UPDATE %s
        SET status = $1,
            return_condition = COALESCE($2, return_condition),
            return_date = COALESCE($3, return_date),
            received_by = COALESCE($4, received_by),
            return_notes = COALESCE($5, return_notes),
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $6 AND status = $7
    `, transactionTable)

	result, err := tx.Exec(ctx, query,
		newStatus,
		ret.Condition,
		ret.Date,
		ret.ReceivedBy,
		ret.Notes,
		id,
		constants.TransactionStatusReleased,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrInvalidState
	}
	return nil
}
