package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// The opaque token value is the primary key: one row per physical device,
// reassigned in place when the device re-registers under another member.
type DeviceTokenModel struct {
	Token        string    `gorm:"type:text;primary_key"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	SubscribedAt time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
