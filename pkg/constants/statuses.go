package constants

// --- СТАТУСЫ ОБОРУДОВАНИЯ (Совпадает со значениями в БД) ---
const (
	EquipmentStatusAvailable   = "available"
	EquipmentStatusInUse       = "in_use"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusRetired     = "retired"
)

// --- СОСТОЯНИЕ ОБОРУДОВАНИЯ ---
const (
	EquipmentConditionExcellent = "excellent"
	EquipmentConditionGood      = "good"
	EquipmentConditionFair      = "fair"
	EquipmentConditionPoor      = "poor"
)

// --- СТАТУСЫ ЗАЯВОК ---
const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusRejected  = "rejected"
	RequestStatusFulfilled = "fulfilled"
)

// --- ТИПЫ И РЕЖИМЫ ЗАЯВОК ---
const (
	RequestTypeNewAssignment = "new_assignment"
	RequestTypeReplacement   = "replacement"
	RequestTypeAdditional    = "additional"

	RequestModeOnSite       = "on_site"
	RequestModeWorkFromHome = "work_from_home"
)

// --- СТАТУСЫ ОПЕРАЦИЙ ВЫДАЧИ ---
const (
	TransactionStatusPending  = "pending"
	TransactionStatusReleased = "released"
	TransactionStatusReturned = "returned"
	TransactionStatusLost     = "lost"
	TransactionStatusDamaged  = "damaged"
)

// --- СОСТОЯНИЕ ПРИ ВЫДАЧЕ/ВОЗВРАТЕ ---
const (
	ReleaseConditionBrandNew = "brand_new"
	ReleaseConditionGood     = "good_condition"
	ReleaseConditionDamaged  = "damaged"
)

// Финальные статусы операции: из них нет переходов.
var FinalTransactionStatuses = []string{
	TransactionStatusReturned,
	TransactionStatusLost,
	TransactionStatusDamaged,
}

func IsFinalTransactionStatus(status string) bool {
	for _, s := range FinalTransactionStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// --- НУМЕРАЦИЯ ДОКУМЕНТОВ ---
const (
	RequestNumberPrefix     = "REQ"
	TransactionNumberPrefix = "TXN"

	RequestCounterName     = "request_number"
	TransactionCounterName = "transaction_number"
)
