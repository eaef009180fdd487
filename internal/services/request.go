package services

import (
	"context"
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

type RequestService struct {
	storage               *pgxpool.Pool
	requestRepository     repositories.RequestRepositoryInterface
	equipmentRepository   repositories.EquipmentRepositoryInterface
	employeeRepository    repositories.EmployeeRepositoryInterface
	transactionRepository repositories.TransactionRepositoryInterface
	counterRepository     repositories.CounterRepositoryInterface
	bus                   *eventbus.Bus
	logger                *zap.Logger
}

func NewRequestService(
	storage *pgxpool.Pool,
	requestRepository repositories.RequestRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	employeeRepository repositories.EmployeeRepositoryInterface,
	transactionRepository repositories.TransactionRepositoryInterface,
	counterRepository repositories.CounterRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		storage:               storage,
		requestRepository:     requestRepository,
		equipmentRepository:   equipmentRepository,
		employeeRepository:    employeeRepository,
		transactionRepository: transactionRepository,
		counterRepository:     counterRepository,
		bus:                   bus,
		logger:                logger,
	}
}

// parseDateField разбирает дату формата YYYY-MM-DD из необязательного поля DTO.
func parseDateField(value *string) (null.Time, error) {
	if value == nil || *value == "" {
		return null.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return null.Time{}, apperrors.NewInvalidInputError("неверный формат даты %q, ожидается YYYY-MM-DD", *value)
	}
	return null.TimeFrom(t), nil
}

func (s *RequestService) GetRequests(ctx context.Context, filter types.Filter) ([]entities.Request, uint64, error) {
	return s.requestRepository.GetRequests(ctx, filter)
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	return s.requestRepository.FindRequest(ctx, id)
}

func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.Request, error) {
	if _, err := s.employeeRepository.FindEmployee(ctx, payload.EmployeeID); err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		return nil, err
	}
	if equipment.Status != constants.EquipmentStatusAvailable {
		return nil, apperrors.ErrEquipmentUnavailable
	}

	exists, err := s.requestRepository.HasPendingRequest(ctx, payload.EmployeeID, payload.EquipmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicatePendingRequest
	}

	startDate, err := parseDateField(payload.ExpectedStartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDateField(payload.ExpectedEndDate)
	if err != nil {
		return nil, err
	}
	if startDate.Valid && endDate.Valid && endDate.Time.Before(startDate.Time) {
		return nil, apperrors.NewInvalidInputError("дата окончания раньше даты начала")
	}

	request := entities.Request{
		EmployeeID:        payload.EmployeeID,
		EquipmentID:       payload.EquipmentID,
		RequestType:       payload.RequestType,
		RequestMode:       payload.RequestMode,
		Reason:            payload.Reason,
		RequestedDate:     time.Now(),
		ExpectedStartDate: startDate,
		ExpectedEndDate:   endDate,
	}

	var requestID uint64
	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		number, err := s.counterRepository.NextRequestNumber(ctx, tx)
		if err != nil {
			return err
		}
		request.RequestNumber = number

		requestID, err = s.requestRepository.CreateRequestInTx(ctx, tx, request)
		return err
	})
	if err != nil {
		s.logger.Error("Ошибка при создании заявки", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Заявка создана",
		zap.Uint64("id", requestID),
		zap.String("request_number", request.RequestNumber),
	)

	return s.requestRepository.FindRequest(ctx, requestID)
}

func (s *RequestService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*entities.Request, error) {
	request, err := s.requestRepository.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != constants.RequestStatusPending {
		return nil, apperrors.ErrRequestNotModifiable
	}

	if payload.RequestType != nil {
		request.RequestType = *payload.RequestType
	}
	if payload.RequestMode != nil {
		request.RequestMode = *payload.RequestMode
	}
	if payload.Reason != nil {
		request.Reason = *payload.Reason
	}
	if payload.ExpectedStartDate != nil {
		startDate, err := parseDateField(payload.ExpectedStartDate)
		if err != nil {
			return nil, err
		}
		request.ExpectedStartDate = startDate
	}
	if payload.ExpectedEndDate != nil {
		endDate, err := parseDateField(payload.ExpectedEndDate)
		if err != nil {
			return nil, err
		}
		request.ExpectedEndDate = endDate
	}
	if request.ExpectedStartDate.Valid && request.ExpectedEndDate.Valid &&
		request.ExpectedEndDate.Time.Before(request.ExpectedStartDate.Time) {
		return nil, apperrors.NewInvalidInputError("дата окончания раньше даты начала")
	}

	if err := s.requestRepository.UpdateRequest(ctx, id, *request); err != nil {
		return nil, err
	}
	return s.requestRepository.FindRequest(ctx, id)
}

func (s *RequestService) DeleteRequest(ctx context.Context, id uint64) error {
	return s.requestRepository.DeleteRequest(ctx, id)
}

// ApproveRequest переводит заявку pending -> approved и в той же транзакции
// БД закрепляет оборудование (available -> in_use) и создаёт операцию выдачи.
// Любой сбой на любом шаге откатывает всё целиком.
func (s *RequestService) ApproveRequest(ctx context.Context, id uint64, payload dto.ApproveRequestDTO) (*dto.ApproveRequestResultDTO, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var (
		approved      *entities.Request
		transactionID uint64
	)

	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		request, err := s.requestRepository.FindRequestForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if request.Status != constants.RequestStatusPending {
			return apperrors.ErrRequestNotModifiable
		}

		if err := s.requestRepository.ApproveInTx(ctx, tx, id, actorID, payload.ApprovalNotes); err != nil {
			return err
		}

		// CAS-переход: если оборудование уже не available, транзакция откатывается.
		if err := s.equipmentRepository.ChangeStatus(ctx, tx, request.EquipmentID,
			constants.EquipmentStatusAvailable, constants.EquipmentStatusInUse); err != nil {
			return err
		}

		number, err := s.counterRepository.NextTransactionNumber(ctx, tx)
		if err != nil {
			return err
		}

		transactionID, err = s.transactionRepository.CreateTransactionInTx(ctx, tx, entities.Transaction{
			TransactionNumber:  number,
			UserID:             actorID,
			EmployeeID:         request.EmployeeID,
			EquipmentID:        request.EquipmentID,
			RequestID:          null.Uint64From(request.ID),
			RequestMode:        request.RequestMode,
			ExpectedReturnDate: request.ExpectedEndDate,
		})
		if err != nil {
			return err
		}

		approved = request
		return nil
	})
	if err != nil {
		s.logger.Error("Ошибка при согласовании заявки", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Заявка согласована",
		zap.Uint64("request_id", id),
		zap.Uint64("transaction_id", transactionID),
		zap.Uint64("actor_id", actorID),
	)

	s.bus.Publish(ctx, events.RequestApprovedEvent{
		EventID:       uuid.NewString(),
		RequestID:     id,
		RequestNumber: approved.RequestNumber,
		TransactionID: transactionID,
		EquipmentID:   approved.EquipmentID,
		EmployeeID:    approved.EmployeeID,
		ActorID:       actorID,
	})

	request, err := s.requestRepository.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	transaction, err := s.transactionRepository.FindTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	return &dto.ApproveRequestResultDTO{Request: request, Transaction: transaction}, nil
}

func (s *RequestService) RejectRequest(ctx context.Context, id uint64, payload dto.RejectRequestDTO) (*entities.Request, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.requestRepository.Reject(ctx, id, actorID, payload.RejectionReason); err != nil {
		return nil, err
	}

	request, err := s.requestRepository.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.RequestRejectedEvent{
		EventID:       uuid.NewString(),
		RequestID:     id,
		RequestNumber: request.RequestNumber,
		Reason:        payload.RejectionReason,
		ActorID:       actorID,
	})

	return request, nil
}
