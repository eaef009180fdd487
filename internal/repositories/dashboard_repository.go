package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"equipment-system/internal/dto"
	"equipment-system/pkg/constants"
)

type DashboardRepositoryInterface interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	summary := &dto.DashboardSummaryDTO{
		EquipmentByStatus: make(map[string]uint64),
	}

	// Оборудование по статусам
	query, args, err := psql.Select("status", "COUNT(*)").From(equipmentTable).GroupBy("status").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summary.EquipmentByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Ожидающие заявки
	query, args, err = psql.Select("COUNT(*)").From(requestTable).
		Where(sq.Eq{"status": constants.RequestStatusPending}).ToSql()
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&summary.PendingRequests); err != nil {
		return nil, err
	}

	// Открытые операции выдачи
	query, args, err = psql.Select("COUNT(*)").From(transactionTable).
		Where(sq.Eq{"status": []string{constants.TransactionStatusPending, constants.TransactionStatusReleased}}).ToSql()
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&summary.OpenTransactions); err != nil {
		return nil, err
	}

	// Просроченные возвраты
	query, args, err = psql.Select("COUNT(*)").From(transactionTable).
		Where(sq.Eq{"status": constants.TransactionStatusReleased}).
		Where("expected_return_date IS NOT NULL AND expected_return_date < CURRENT_TIMESTAMP").ToSql()
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&summary.OverdueTransactions); err != nil {
		return nil, err
	}

	return summary, nil
}
