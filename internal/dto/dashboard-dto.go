package dto

type DashboardSummaryDTO struct {
	EquipmentByStatus   map[string]uint64 `json:"equipment_by_status"`
	PendingRequests     uint64            `json:"pending_requests"`
	OpenTransactions    uint64            `json:"open_transactions"`
	OverdueTransactions uint64            `json:"overdue_transactions"`
}
