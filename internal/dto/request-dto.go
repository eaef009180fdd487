package dto

import "equipment-system/internal/entities"

type CreateRequestDTO struct {
	EmployeeID        uint64  `json:"employee_id" validate:"required,gt=0"`
	EquipmentID       uint64  `json:"equipment_id" validate:"required,gt=0"`
	RequestType       string  `json:"request_type" validate:"required,oneof=new_assignment replacement additional"`
	RequestMode       string  `json:"request_mode" validate:"required,oneof=on_site work_from_home"`
	Reason            string  `json:"reason" validate:"omitempty"`
	ExpectedStartDate *string `json:"expected_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpectedEndDate   *string `json:"expected_end_date,omitempty"   validate:"omitempty,datetime=2006-01-02"`
}

// UpdateRequestDTO: менять можно только тип/режим/причину/даты, и только пока заявка pending.
type UpdateRequestDTO struct {
	RequestType       *string `json:"request_type,omitempty" validate:"omitempty,oneof=new_assignment replacement additional"`
	RequestMode       *string `json:"request_mode,omitempty" validate:"omitempty,oneof=on_site work_from_home"`
	Reason            *string `json:"reason,omitempty"       validate:"omitempty"`
	ExpectedStartDate *string `json:"expected_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpectedEndDate   *string `json:"expected_end_date,omitempty"   validate:"omitempty,datetime=2006-01-02"`
}

type ApproveRequestDTO struct {
	ApprovalNotes string `json:"approval_notes" validate:"omitempty"`
}

type RejectRequestDTO struct {
	RejectionReason string `json:"rejection_reason" validate:"required"`
}

// ApproveRequestResultDTO — итог согласования: обновлённая заявка
// плюс созданная в той же транзакции операция выдачи.
type ApproveRequestResultDTO struct {
	Request     *entities.Request     `json:"request"`
	Transaction *entities.Transaction `json:"transaction"`
}
