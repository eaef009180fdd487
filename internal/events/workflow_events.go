package events

// События жизненного цикла. Публикуются после коммита транзакции,
// слушатели обрабатывают их асинхронно.

type RequestApprovedEvent struct {
	EventID       string
	RequestID     uint64
	RequestNumber string
	TransactionID uint64
	EquipmentID   uint64
	EmployeeID    uint64
	ActorID       uint64
}

func (e RequestApprovedEvent) Name() string { return "request.approved" }

type RequestRejectedEvent struct {
	EventID       string
	RequestID     uint64
	RequestNumber string
	Reason        string
	ActorID       uint64
}

func (e RequestRejectedEvent) Name() string { return "request.rejected" }

type TransactionReleasedEvent struct {
	EventID           string
	TransactionID     uint64
	TransactionNumber string
	EquipmentID       uint64
	ReleaseCondition  string
	ActorID           uint64
}

func (e TransactionReleasedEvent) Name() string { return "transaction.released" }

type TransactionClosedEvent struct {
	EventID           string
	TransactionID     uint64
	TransactionNumber string
	EquipmentID       uint64
	NewStatus         string
	ActorID           uint64
}

func (e TransactionClosedEvent) Name() string { return "transaction.closed" }
