package entities

import (
	"github.com/aarondl/null/v8"

	"equipment-system/pkg/types"
)

// Transaction — операция физической выдачи/возврата оборудования.
// Жизненный цикл: pending -> released -> returned | lost | damaged.
type Transaction struct {
	ID                uint64      `json:"id"`
	TransactionNumber string      `json:"transaction_number"`
	UserID            uint64      `json:"user_id"`
	EmployeeID        uint64      `json:"employee_id"`
	EquipmentID       uint64      `json:"equipment_id"`
	RequestID         null.Uint64 `json:"request_id"`
	Status            string      `json:"status"`
	RequestMode       string      `json:"request_mode"`

	ReleaseCondition null.String `json:"release_condition"`
	ReleaseDate      null.Time   `json:"release_date"`
	ReleasedBy       null.Uint64 `json:"released_by"`
	ReleaseNotes     null.String `json:"release_notes"`

	ReturnCondition null.String `json:"return_condition"`
	ReturnDate      null.Time   `json:"return_date"`
	ReceivedBy      null.Uint64 `json:"received_by"`
	ReturnNotes     null.String `json:"return_notes"`

	ExpectedReturnDate null.Time `json:"expected_return_date"`

	types.BaseEntity

	// Поля для связанных данных (не колонки в таблице)
	Employee  *Employee  `json:"employee,omitempty" db:"-"`
	Equipment *Equipment `json:"equipment,omitempty" db:"-"`
}
