package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/types"
)

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return s.equipmentRepository.GetEquipments(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	equipment := entities.Equipment{
		Name:      payload.Name,
		Brand:     payload.Brand,
		Model:     payload.Model,
		Condition: payload.Condition,
	}
	if payload.SerialNumber != nil {
		equipment.SerialNumber = null.StringFrom(*payload.SerialNumber)
	}
	if payload.AssetTag != nil {
		equipment.AssetTag = null.StringFrom(*payload.AssetTag)
	}
	if payload.CategoryID != nil {
		equipment.CategoryID = null.Uint64From(*payload.CategoryID)
	}

	id, err := s.equipmentRepository.CreateEquipment(ctx, equipment)
	if err != nil {
		s.logger.Error("Ошибка при создании оборудования", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Оборудование успешно создано", zap.Uint64("id", id))

	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	// Частичное обновление: накладываем только переданные поля.
	if payload.Name != nil {
		equipment.Name = *payload.Name
	}
	if payload.Brand != nil {
		equipment.Brand = *payload.Brand
	}
	if payload.Model != nil {
		equipment.Model = *payload.Model
	}
	if payload.SerialNumber != nil {
		equipment.SerialNumber = null.StringFrom(*payload.SerialNumber)
	}
	if payload.AssetTag != nil {
		equipment.AssetTag = null.StringFrom(*payload.AssetTag)
	}
	if payload.Condition != nil {
		equipment.Condition = *payload.Condition
	}
	if payload.Status != nil {
		// Статус in_use выставляется только процессом согласования,
		// вручную его присвоить нельзя (отсечено валидацией DTO).
		equipment.Status = *payload.Status
	}
	if payload.CategoryID != nil {
		equipment.CategoryID = null.Uint64From(*payload.CategoryID)
	}

	if err := s.equipmentRepository.UpdateEquipment(ctx, id, *equipment); err != nil {
		return nil, err
	}

	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	count, err := s.equipmentRepository.CountActiveTransactions(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrEquipmentInUse
	}
	return s.equipmentRepository.DeleteEquipment(ctx, id)
}
