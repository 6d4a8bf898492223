package models

import "time"

type AuditLog struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SedeID   string `gorm:"type:uuid;index" json:"sede_id"`
	UserID   string `gorm:"size:64" json:"user_id"`
	UserRole string `gorm:"size:30" json:"user_role"`
	Action   string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"size:64" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
