package entities

import "equipment-system/pkg/types"

type Category struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	types.BaseEntity
}
