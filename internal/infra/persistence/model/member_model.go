// Package model contains the GORM-specific structs mapping domain
// entities onto PostgreSQL tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel is the GORM-specific struct for the 'members' table.
// The portal provisions rows; this service reads them and maintains the
// push-related columns only.
type MemberModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DisplayName     string    `gorm:"type:text;not null"`
	Role            string    `gorm:"type:text;not null;default:'member'"`
	NotifyEvents    bool      `gorm:"not null;default:true"`
	NotifyProjects  bool      `gorm:"not null;default:true"`
	NotifyAdmin     bool      `gorm:"not null;default:true"`
	NotifyEmail     bool      `gorm:"not null;default:true"`
	LastTokenUpdate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
