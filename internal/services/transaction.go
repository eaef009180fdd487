package services

import (
	"context"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/internal/events"
	"equipment-system/internal/repositories"
	"equipment-system/pkg/constants"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/eventbus"
	"equipment-system/pkg/types"
	"equipment-system/pkg/utils"
)

type TransactionService struct {
	storage               *pgxpool.Pool
	transactionRepository repositories.TransactionRepositoryInterface
	equipmentRepository   repositories.EquipmentRepositoryInterface
	bus                   *eventbus.Bus
	logger                *zap.Logger
}

func NewTransactionService(
	storage *pgxpool.Pool,
	transactionRepository repositories.TransactionRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *TransactionService {
	return &TransactionService{
		storage:               storage,
		transactionRepository: transactionRepository,
		equipmentRepository:   equipmentRepository,
		bus:                   bus,
		logger:                logger,
	}
}

// ClassifyCondition нормализует свободный текст о состоянии оборудования
// к одному из трёх значений release_condition. Сравнение без учёта регистра,
// по вхождению подстроки.
func ClassifyCondition(conditionOnIssue string) string {
	v := strings.ToLower(conditionOnIssue)

	for _, marker := range []string{"excellent", "brand new", "perfect"} {
		if strings.Contains(v, marker) {
			return constants.ReleaseConditionBrandNew
		}
	}
	for _, marker := range []string{"damaged", "broken", "defective"} {
		if strings.Contains(v, marker) {
			return constants.ReleaseConditionDamaged
		}
	}
	return constants.ReleaseConditionGood
}

func (s *TransactionService) GetTransactions(ctx context.Context, filter types.Filter) ([]entities.Transaction, uint64, error) {
	return s.transactionRepository.GetTransactions(ctx, filter)
}

func (s *TransactionService) FindTransaction(ctx context.Context, id uint64) (*entities.Transaction, error) {
	return s.transactionRepository.FindTransaction(ctx, id)
}

// ReleaseTransaction фиксирует физическую выдачу: pending -> released.
// Повторная выдача по той же операции отклоняется отдельной ошибкой.
func (s *TransactionService) ReleaseTransaction(ctx context.Context, id uint64, payload dto.ReleaseTransactionDTO) (*entities.Transaction, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	releasedBy := actorID
	if payload.ReleasedBy != nil {
		releasedBy = *payload.ReleasedBy
	}

	condition := ClassifyCondition(payload.ConditionOnIssue)

	var released *entities.Transaction
	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		transaction, err := s.transactionRepository.FindTransactionForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if transaction.Status == constants.TransactionStatusReleased {
			return apperrors.ErrAlreadyReleased
		}
		if transaction.Status != constants.TransactionStatusPending {
			return apperrors.ErrInvalidState
		}

		if err := s.transactionRepository.ReleaseInTx(ctx, tx, id, condition, payload.ReleaseNotes, releasedBy); err != nil {
			return err
		}

		released = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Оборудование выдано",
		zap.Uint64("transaction_id", id),
		zap.String("release_condition", condition),
		zap.Uint64("released_by", releasedBy),
	)

	s.bus.Publish(ctx, events.TransactionReleasedEvent{
		EventID:           uuid.NewString(),
		TransactionID:     id,
		TransactionNumber: released.TransactionNumber,
		EquipmentID:       released.EquipmentID,
		ReleaseCondition:  condition,
		ActorID:           actorID,
	})

	return s.transactionRepository.FindTransaction(ctx, id)
}

// UpdateTransactionStatus закрывает операцию: released -> returned | lost | damaged.
// Оборудование в той же транзакции БД освобождается (in_use -> available).
func (s *TransactionService) UpdateTransactionStatus(ctx context.Context, id uint64, payload dto.UpdateTransactionStatusDTO) (*entities.Transaction, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	returnDate, err := parseDateField(payload.ReturnDate)
	if err != nil {
		return nil, err
	}
	if !returnDate.Valid && payload.Status == constants.TransactionStatusReturned {
		returnDate = null.TimeFrom(time.Now())
	}

	ret := repositories.ReturnFields{
		Date:       returnDate,
		ReceivedBy: null.Uint64From(actorID),
	}
	if payload.ReturnCondition != nil {
		ret.Condition = null.StringFrom(*payload.ReturnCondition)
	}
	if payload.ReceivedBy != nil {
		ret.ReceivedBy = null.Uint64From(*payload.ReceivedBy)
	}
	if payload.ReturnNotes != nil {
		ret.Notes = null.StringFrom(*payload.ReturnNotes)
	}

	var closed *entities.Transaction
	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		transaction, err := s.transactionRepository.FindTransactionForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if transaction.Status != constants.TransactionStatusReleased {
			return apperrors.ErrInvalidState
		}

		if err := s.transactionRepository.UpdateStatusInTx(ctx, tx, id, payload.Status, ret); err != nil {
			return err
		}

		// Любой терминальный статус освобождает оборудование.
		if err := s.equipmentRepository.ChangeStatus(ctx, tx, transaction.EquipmentID,
			constants.EquipmentStatusInUse, constants.EquipmentStatusAvailable); err != nil {
			return err
		}

		closed = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Операция выдачи закрыта",
		zap.Uint64("transaction_id", id),
		zap.String("status", payload.Status),
	)

	s.bus.Publish(ctx, events.TransactionClosedEvent{
		EventID:           uuid.NewString(),
		TransactionID:     id,
		TransactionNumber: closed.TransactionNumber,
		EquipmentID:       closed.EquipmentID,
		NewStatus:         payload.Status,
		ActorID:           actorID,
	})

	return s.transactionRepository.FindTransaction(ctx, id)
}
