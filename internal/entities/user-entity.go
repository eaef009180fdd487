package entities

import "equipment-system/pkg/types"

// User — учетная запись сотрудника ИТ-отдела, который обрабатывает заявки.
// Выдача и хранение токенов — зона внешнего auth-сервиса, здесь только
// данные, нужные для approved_by/released_by/received_by.
type User struct {
	ID       uint64 `json:"id"`
	Fio      string `json:"fio"`
	Email    string `json:"email"`
	Password string `json:"-"`

	types.BaseEntity
}
