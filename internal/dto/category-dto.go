package dto

type CreateCategoryDTO struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty" validate:"omitempty"`
}
