package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"equipment-system/pkg/types"
)

// Request — заявка сотрудника на оборудование.
// Жизненный цикл: pending -> approved | rejected (approved -> fulfilled двигается извне).
type Request struct {
	ID            uint64 `json:"id"`
	RequestNumber string `json:"request_number"`
	EmployeeID    uint64 `json:"employee_id"`
	EquipmentID   uint64 `json:"equipment_id"`
	RequestType   string `json:"request_type"`
	RequestMode   string `json:"request_mode"`
	Status        string `json:"status"`
	Reason        string `json:"reason"`

	RequestedDate     time.Time `json:"requested_date"`
	ExpectedStartDate null.Time `json:"expected_start_date"`
	ExpectedEndDate   null.Time `json:"expected_end_date"`

	ApprovedBy      null.Uint64 `json:"approved_by"`
	ApprovedAt      null.Time   `json:"approved_at"`
	ApprovalNotes   null.String `json:"approval_notes"`
	RejectionReason null.String `json:"rejection_reason"`

	types.BaseEntity

	// Поля для связанных данных (не колонки в таблице)
	Employee  *Employee  `json:"employee,omitempty" db:"-"`
	Equipment *Equipment `json:"equipment,omitempty" db:"-"`
}
