// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member is the identity the notification service works against. The
// portal owns the full membership record; this service only reads the
// fields it needs and maintains the push-related ones.
type Member struct {
	ID              uuid.UUID               `json:"id"`                          // The unique identifier of the member.
	DisplayName     string                  `json:"display_name"`                // Name shown in portal UI.
	Role            Role                    `json:"role"`                        // Portal role (member, mentor, admin).
	Preferences     NotificationPreferences `json:"notification_preferences"`    // Per-category opt-outs.
	LastTokenUpdate *time.Time              `json:"last_token_update,omitempty"` // Bumped whenever a device token is registered.
	CreatedAt       time.Time               `json:"created_at"`                  // Timestamp of when the member joined.
	UpdatedAt       time.Time               `json:"updated_at"`                  // Timestamp of the last modification.
}
