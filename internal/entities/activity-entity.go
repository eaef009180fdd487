package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type ActivityLog struct {
	ID          uint64      `json:"id"`
	EventID     string      `json:"event_id"`
	Action      string      `json:"action"`
	Description string      `json:"description"`
	SubjectType string      `json:"subject_type"`
	SubjectID   uint64      `json:"subject_id"`
	UserID      null.Uint64 `json:"user_id"`
	CreatedAt   time.Time   `json:"created_at"`
}
