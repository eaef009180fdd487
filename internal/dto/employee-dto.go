package dto

type CreateEmployeeDTO struct {
	Fio        string `json:"fio" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
	Position   string `json:"position" validate:"omitempty"`
}

type UpdateEmployeeDTO struct {
	Fio        *string `json:"fio,omitempty"        validate:"omitempty,min=1"`
	Email      *string `json:"email,omitempty"      validate:"omitempty,email"`
	Department *string `json:"department,omitempty" validate:"omitempty,min=1"`
	Position   *string `json:"position,omitempty"   validate:"omitempty"`
}

type ShortEmployeeDTO struct {
	ID  uint64 `json:"id"`
	Fio string `json:"fio"`
}
