package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Rows are append-only apart from the one-way read transition; the composite
// index on (user_id, read) serves both the unread listing and the unread count.
type NotificationModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_read,priority:1"`
	Title  string    `gorm:"type:text;not null"`
	Body   string    `gorm:"type:text;not null"`
	URL    string    `gorm:"type:text;not null;default:'/'"`
	Icon   string    `gorm:"type:text;not null;default:'/icon-192x192.png'"`
	Tag    string    `gorm:"type:text"`
	// Data holds the optional opaque payload as serialized JSON. Mapping is
	// done in the repository so the domain entity keeps a plain map.
	Data      string     `gorm:"type:jsonb"`
	Read      bool       `gorm:"not null;default:false;index:idx_notifications_user_read,priority:2"`
	ReadAt    *time.Time
	CreatedAt time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
