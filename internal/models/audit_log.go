package models

import "time"

type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "employee", "hardware", "software", "assignment"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "update", "return", "delete" 등
	Details  string `gorm:"type:text"`
}
