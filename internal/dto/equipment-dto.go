package dto

type CreateEquipmentDTO struct {
	Name         string  `json:"name" validate:"required"`
	Brand        string  `json:"brand" validate:"required"`
	Model        string  `json:"model" validate:"required"`
	SerialNumber *string `json:"serial_number,omitempty" validate:"omitempty,min=3"`
	AssetTag     *string `json:"asset_tag,omitempty" validate:"omitempty,min=3"`
	Condition    string  `json:"condition" validate:"required,oneof=excellent good fair poor"`
	CategoryID   *uint64 `json:"category_id,omitempty" validate:"omitempty,gt=0"`
}

type UpdateEquipmentDTO struct {
	Name         *string `json:"name,omitempty"          validate:"omitempty,min=1"`
	Brand        *string `json:"brand,omitempty"         validate:"omitempty,min=1"`
	Model        *string `json:"model,omitempty"         validate:"omitempty,min=1"`
	SerialNumber *string `json:"serial_number,omitempty" validate:"omitempty,min=3"`
	AssetTag     *string `json:"asset_tag,omitempty"     validate:"omitempty,min=3"`
	Condition    *string `json:"condition,omitempty"     validate:"omitempty,oneof=excellent good fair poor"`
	Status       *string `json:"status,omitempty"        validate:"omitempty,oneof=available maintenance retired"`
	CategoryID   *uint64 `json:"category_id,omitempty"   validate:"omitempty,gt=0"`
}

type ShortEquipmentDTO struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type ImportEquipmentResultDTO struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Errors  int `json:"errors"`
}
