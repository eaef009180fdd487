package repositories

import (
	"context"
	"fmt"

	"equipment-system/pkg/constants"
)

// CounterRepository выдаёт последовательные номера документов.
// Номер выделяется строкой UPDATE ... RETURNING внутри той же транзакции,
// что и вставка документа, поэтому параллельные выдачи не дают дублей:
// вторая транзакция ждёт блокировку строки счётчика до коммита первой.
type CounterRepositoryInterface interface {
	NextNumber(ctx context.Context, q Querier, counterName string) (uint64, error)
	NextRequestNumber(ctx context.Context, q Querier) (string, error)
	NextTransactionNumber(ctx context.Context, q Querier) (string, error)
}

type CounterRepository struct{}

func NewCounterRepository() CounterRepositoryInterface {
	return &CounterRepository{}
}

func (r *CounterRepository) NextNumber(ctx context.Context, q Querier, counterName string) (uint64, error) {
	var value uint64
	err := q.QueryRow(ctx,
		`UPDATE counters SET value = value + 1 WHERE name = $1 RETURNING value`,
		counterName,
	).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("не удалось выделить номер для счётчика %q: %w", counterName, err)
	}
	return value, nil
}

// FormatDocumentNumber приводит номер к виду REQ-000001 / TXN-000001.
func FormatDocumentNumber(prefix string, value uint64) string {
	return fmt.Sprintf("%s-%06d", prefix, value)
}

// NextRequestNumber и NextTransactionNumber — удобные обёртки.
func (r *CounterRepository) NextRequestNumber(ctx context.Context, q Querier) (string, error) {
	value, err := r.NextNumber(ctx, q, constants.RequestCounterName)
	if err != nil {
		return "", err
	}
	return FormatDocumentNumber(constants.RequestNumberPrefix, value), nil
}

func (r *CounterRepository) NextTransactionNumber(ctx context.Context, q Querier) (string, error) {
	value, err := r.NextNumber(ctx, q, constants.TransactionCounterName)
	if err != nil {
		return "", err
	}
	return FormatDocumentNumber(constants.TransactionNumberPrefix, value), nil
}
