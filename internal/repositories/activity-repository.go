package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"equipment-system/internal/entities"
	"equipment-system/internal/infrastructure/bd"
	"equipment-system/pkg/types"
)

const activityLogTable = "activity_logs"

var activityLogMap = map[string]string{
	"id":           "a.id",
	"action":       "a.action",
	"subject_type": "a.subject_type",
	"subject_id":   "a.subject_id",
	"user_id":      "a.user_id",
	"created_at":   "a.created_at",
}

type ActivityLogRepositoryInterface interface {
	Insert(ctx context.Context, logEntry entities.ActivityLog) error
	GetActivityLogs(ctx context.Context, filter types.Filter) ([]entities.ActivityLog, uint64, error)
}

type ActivityLogRepository struct {
	storage *pgxpool.Pool
}

func NewActivityLogRepository(storage *pgxpool.Pool) ActivityLogRepositoryInterface {
	return &ActivityLogRepository{storage: storage}
}

func (r *ActivityLogRepository) Insert(ctx context.Context, logEntry entities.ActivityLog) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (event_id, action, description, subject_type, subject_id, user_id)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, activityLogTable)

	_, err := r.storage.Exec(ctx, query,
		logEntry.EventID,
		logEntry.Action,
		logEntry.Description,
		logEntry.SubjectType,
		logEntry.SubjectID,
		logEntry.UserID,
	)
	return err
}

func (r *ActivityLogRepository) GetActivityLogs(ctx context.Context, filter types.Filter) ([]entities.ActivityLog, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countBuilder := psql.Select("COUNT(a.id)").From(activityLogTable + " AS a")
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, activityLogMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.ActivityLog{}, 0, nil
	}

	baseBuilder := psql.Select(
		"a.id", "a.event_id", "a.action", "a.description", "a.subject_type", "a.subject_id", "a.user_id", "a.created_at",
	).From(activityLogTable + " AS a")

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("a.id DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, activityLogMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := make([]entities.ActivityLog, 0, filter.Limit)
	for rows.Next() {
		var a entities.ActivityLog
		if err := rows.Scan(&a.ID, &a.EventID, &a.Action, &a.Description, &a.SubjectType, &a.SubjectID, &a.UserID, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		logs = append(logs, a)
	}

	return logs, total, nil
}
