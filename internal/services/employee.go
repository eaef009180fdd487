package services

import (
	"context"

	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/internal/entities"
	"equipment-system/internal/repositories"
	"equipment-system/pkg/types"
)

type EmployeeService struct {
	employeeRepository repositories.EmployeeRepositoryInterface
	logger             *zap.Logger
}

func NewEmployeeService(employeeRepository repositories.EmployeeRepositoryInterface, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

func (s *EmployeeService) GetEmployees(ctx context.Context, filter types.Filter) ([]entities.Employee, uint64, error) {
	return s.employeeRepository.GetEmployees(ctx, filter)
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	return s.employeeRepository.FindEmployee(ctx, id)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error) {
	id, err := s.employeeRepository.CreateEmployee(ctx, entities.Employee{
		Fio:        payload.Fio,
		Email:      payload.Email,
		Department: payload.Department,
		Position:   payload.Position,
	})
	if err != nil {
		s.logger.Error("Ошибка при создании сотрудника", zap.Error(err))
		return nil, err
	}
	return s.employeeRepository.FindEmployee(ctx, id)
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*entities.Employee, error) {
	employee, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Fio != nil {
		employee.Fio = *payload.Fio
	}
	if payload.Email != nil {
		employee.Email = *payload.Email
	}
	if payload.Department != nil {
		employee.Department = *payload.Department
	}
	if payload.Position != nil {
		employee.Position = *payload.Position
	}

	if err := s.employeeRepository.UpdateEmployee(ctx, id, *employee); err != nil {
		return nil, err
	}
	return s.employeeRepository.FindEmployee(ctx, id)
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint64) error {
	return s.employeeRepository.DeleteEmployee(ctx, id)
}
