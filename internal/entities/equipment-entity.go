package entities

import (
	"github.com/aarondl/null/v8"

	"equipment-system/pkg/types"
)

type Equipment struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	Brand        string      `json:"brand"`
	Model        string      `json:"model"`
	SerialNumber null.String `json:"serial_number"`
	AssetTag     null.String `json:"asset_tag"`
	Status       string      `json:"status"`
	Condition    string      `json:"condition"`
	CategoryID   null.Uint64 `json:"category_id"`

	types.BaseEntity

	// Поля для связанных данных (не колонки в таблице)
	Category *Category `json:"category,omitempty" db:"-"`
}
