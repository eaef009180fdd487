package dto

type ReleaseTransactionDTO struct {
	ConditionOnIssue string  `json:"condition_on_issue" validate:"required"`
	ReleaseNotes     string  `json:"release_notes" validate:"omitempty"`
	ReleasedBy       *uint64 `json:"released_by,omitempty" validate:"omitempty,gt=0"`
}

// UpdateTransactionStatusDTO — обобщённый перевод в терминальный статус.
// Поля возврата необязательны, их отсутствие не считается ошибкой.
type UpdateTransactionStatusDTO struct {
	Status          string  `json:"status" validate:"required,oneof=returned lost damaged"`
	ReturnCondition *string `json:"return_condition,omitempty" validate:"omitempty,oneof=brand_new good_condition damaged"`
	ReturnDate      *string `json:"return_date,omitempty"      validate:"omitempty,datetime=2006-01-02"`
	ReceivedBy      *uint64 `json:"received_by,omitempty"      validate:"omitempty,gt=0"`
	ReturnNotes     *string `json:"return_notes,omitempty"     validate:"omitempty"`
}
