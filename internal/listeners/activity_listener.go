package listeners

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"equipment-system/internal/entities"
	"equipment-system/internal/events"
	"equipment-system/internal/repositories"
	"equipment-system/pkg/eventbus"
)

// ActivityListener пишет журнал действий по событиям workflow.
// Запись идёт в фоне: ошибка журнала не должна сорвать саму операцию.
type ActivityListener struct {
	activityRepo repositories.ActivityLogRepositoryInterface
	logger       *zap.Logger
}

func NewActivityListener(activityRepo repositories.ActivityLogRepositoryInterface, logger *zap.Logger) *ActivityListener {
	return &ActivityListener{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (l *ActivityListener) Register(bus *eventbus.Bus) {
	bus.Subscribe("request.approved", l.handleRequestApproved)
	bus.Subscribe("request.rejected", l.handleRequestRejected)
	bus.Subscribe("transaction.released", l.handleTransactionReleased)
	bus.Subscribe("transaction.closed", l.handleTransactionClosed)
	l.logger.Info("ActivityListener подписан на события workflow")
}

func (l *ActivityListener) handleRequestApproved(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.RequestApprovedEvent)
	if !ok {
		return nil
	}
	return l.activityRepo.Insert(ctx, entities.ActivityLog{
		EventID:     e.EventID,
		Action:      "request.approved",
		Description: fmt.Sprintf("Заявка %s согласована, создана операция выдачи #%d", e.RequestNumber, e.TransactionID),
		SubjectType: "request",
		SubjectID:   e.RequestID,
		UserID:      null.Uint64From(e.ActorID),
	})
}

func (l *ActivityListener) handleRequestRejected(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.RequestRejectedEvent)
	if !ok {
		return nil
	}
	return l.activityRepo.Insert(ctx, entities.ActivityLog{
		EventID:     e.EventID,
		Action:      "request.rejected",
		Description: fmt.Sprintf("Заявка %s отклонена: %s", e.RequestNumber, e.Reason),
		SubjectType: "request",
		SubjectID:   e.RequestID,
		UserID:      null.Uint64From(e.ActorID),
	})
}

func (l *ActivityListener) handleTransactionReleased(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.TransactionReleasedEvent)
	if !ok {
		return nil
	}
	return l.activityRepo.Insert(ctx, entities.ActivityLog{
		EventID:     e.EventID,
		Action:      "transaction.released",
		Description: fmt.Sprintf("Оборудование выдано по операции %s (состояние: %s)", e.TransactionNumber, e.ReleaseCondition),
		SubjectType: "transaction",
		SubjectID:   e.TransactionID,
		UserID:      null.Uint64From(e.ActorID),
	})
}

func (l *ActivityListener) handleTransactionClosed(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.TransactionClosedEvent)
	if !ok {
		return nil
	}
	return l.activityRepo.Insert(ctx, entities.ActivityLog{
		EventID:     e.EventID,
		Action:      "transaction." + e.NewStatus,
		Description: fmt.Sprintf("Операция %s закрыта со статусом %s", e.TransactionNumber, e.NewStatus),
		SubjectType: "transaction",
		SubjectID:   e.TransactionID,
		UserID:      null.Uint64From(e.ActorID),
	})
}
