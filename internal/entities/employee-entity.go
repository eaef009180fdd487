package entities

import "equipment-system/pkg/types"

type Employee struct {
	ID         uint64 `json:"id"`
	Fio        string `json:"fio"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`

	types.BaseEntity
}
