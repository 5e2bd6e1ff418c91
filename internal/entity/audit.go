package entity

import (
	"encoding/json"
	"time"
)

const (
	AuditEventInsert = "INSERT"
	AuditEventUpdate = "UPDATE"
	AuditEventDelete = "DELETE"
)

type AuditEvent struct {
	UserID    *int64          `json:"user_id"`
	Page      string          `json:"page"`
	Event     string          `json:"event"`
	RowID     FlexString      `json:"rowID"`
	OldData   json.RawMessage `json:"old_data,omitempty"`
	NewData   json.RawMessage `json:"new_data,omitempty"`
	IPAddress string          `json:"ip_address"`
	CreatedAt time.Time       `json:"created_at"`
}
