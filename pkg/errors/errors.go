package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")

	// Авторизация
	ErrEmptyAuthHeader   = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader = fmt.Errorf("неверный формат заголовка авторизации")
	ErrUnauthorized      = fmt.Errorf("неавторизован")

	// Контекст
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID не найден в контексте запроса")
	ErrInvalidUserID           = fmt.Errorf("недопустимый UserID")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")

	// Жизненный цикл оборудования
	ErrEquipmentUnavailable    = fmt.Errorf("оборудование недоступно для выдачи")
	ErrEquipmentInUse          = fmt.Errorf("оборудование закреплено за сотрудником")
	ErrDuplicatePendingRequest = fmt.Errorf("по этому оборудованию уже есть ожидающая заявка от сотрудника")
	ErrRequestNotModifiable    = fmt.Errorf("заявка уже обработана и не может быть изменена")
	ErrInvalidState            = fmt.Errorf("операция недопустима в текущем статусе")
	ErrAlreadyReleased         = fmt.Errorf("оборудование по этой операции уже выдано")
)

// StatusCodes сопоставляет доменные ошибки HTTP-статусам.
// Всё, что сюда не попало, контроллер отдаёт как 500.
var StatusCodes = map[error]int{
	ErrNotFound:                http.StatusNotFound,
	ErrBadRequest:              http.StatusBadRequest,
	ErrEmptyAuthHeader:         http.StatusUnauthorized,
	ErrInvalidAuthHeader:       http.StatusUnauthorized,
	ErrInvalidToken:            http.StatusUnauthorized,
	ErrTokenExpired:            http.StatusUnauthorized,
	ErrTokenIsNotAccess:        http.StatusUnauthorized,
	ErrUnauthorized:            http.StatusUnauthorized,
	ErrUserIDNotFoundInContext: http.StatusUnauthorized,
	ErrInvalidUserID:           http.StatusUnauthorized,
	ErrEquipmentUnavailable:    http.StatusUnprocessableEntity,
	ErrEquipmentInUse:          http.StatusUnprocessableEntity,
	ErrDuplicatePendingRequest: http.StatusUnprocessableEntity,
	ErrRequestNotModifiable:    http.StatusUnprocessableEntity,
	ErrInvalidState:            http.StatusUnprocessableEntity,
	ErrAlreadyReleased:         http.StatusBadRequest,
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError — ошибка с HTTP-кодом и пользовательским сообщением.
// Err и Context попадают только в лог, Details — в тело ответа.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details map[string]string
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}
